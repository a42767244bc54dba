package bpe

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap these with FitError, CodecError, or PersistError so
// callers can both errors.Is against the sentinel and read a human message
// that names the failing operation.
var (
	// ErrEmptyTrainingData is returned by Fit when the batch is empty or
	// contains only empty sequences.
	ErrEmptyTrainingData = errors.New("bpe: empty training data")

	// ErrTargetVocabTooSmall is returned by Fit when targetVocabSize is not
	// strictly greater than the initial vocabulary size.
	ErrTargetVocabTooSmall = errors.New("bpe: target vocabulary size too small")

	// ErrNotFitted is returned by Encode, Decode, or Save on a tokenizer
	// with no rule table.
	ErrNotFitted = errors.New("bpe: tokenizer has not been fitted or loaded")

	// ErrMalformedBatch is returned when an Encode/Decode argument is not a
	// sequence of sequences of non-negative integers.
	ErrMalformedBatch = errors.New("bpe: malformed batch")

	// ErrMalformedFile is returned by Load when the snapshot file does not
	// conform to the merge-rule JSON schema.
	ErrMalformedFile = errors.New("bpe: malformed rule file")

	// ErrInvalidOption is returned by New when an Option is given a value
	// it cannot accept.
	ErrInvalidOption = errors.New("bpe: invalid option")
)

// FitError reports a failure during Fit.
type FitError struct {
	Op  string
	Err error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("bpe: fit: %s: %v", e.Op, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }

// NewFitError wraps err with the operation that produced it.
func NewFitError(op string, err error) error {
	return &FitError{Op: op, Err: err}
}

// CodecError reports a failure during Encode or Decode.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("bpe: %s: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// NewCodecError wraps err with the operation that produced it.
func NewCodecError(op string, err error) error {
	return &CodecError{Op: op, Err: err}
}

// PersistError reports a failure during Save or Load, optionally naming the
// file path involved.
type PersistError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("bpe: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("bpe: %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// NewPersistError wraps err with the operation and file path that produced it.
func NewPersistError(op, path string, err error) error {
	return &PersistError{Op: op, Path: path, Err: err}
}
