package bpe

import "github.com/agentstation/unittok/fileio"

// FitFromFile reads a whitespace-per-line integer batch from path and
// fits t against it. See Fit for the learning algorithm and validation
// rules.
func (t *Tokenizer) FitFromFile(path string, targetVocabSize int) error {
	batch, err := fileio.ReadBatch(path)
	if err != nil {
		return NewFitError("read training file", err)
	}
	return t.Fit(batch, targetVocabSize)
}

// EncodeFromFile reads a batch from inPath, encodes it, and writes the
// result to outPath in the same whitespace-per-line format.
func (t *Tokenizer) EncodeFromFile(inPath, outPath string) error {
	batch, err := fileio.ReadBatch(inPath)
	if err != nil {
		return NewCodecError("encode", err)
	}
	out, err := t.Encode(batch)
	if err != nil {
		return err
	}
	if err := fileio.WriteBatch(outPath, out); err != nil {
		return NewCodecError("encode", err)
	}
	return nil
}

// DecodeFromFile reads a batch from inPath, decodes it, and writes the
// result to outPath in the same whitespace-per-line format.
func (t *Tokenizer) DecodeFromFile(inPath, outPath string) error {
	batch, err := fileio.ReadBatch(inPath)
	if err != nil {
		return NewCodecError("decode", err)
	}
	out, err := t.Decode(batch)
	if err != nil {
		return err
	}
	if err := fileio.WriteBatch(outPath, out); err != nil {
		return NewCodecError("decode", err)
	}
	return nil
}
