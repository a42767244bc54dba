package rle

import "github.com/agentstation/unittok"

// Batch, Sequence, and Unit alias the shared unittok types so the rest of
// this package can refer to them without an import qualifier.
type (
	Batch    = unittok.Batch
	Sequence = unittok.Sequence
	Unit     = unittok.Unit
)

// Tokenizer is a stateless run-length codec. The zero value is not usable;
// construct one with New.
type Tokenizer struct {
	r int
}

// New constructs a Tokenizer with the given options applied over the
// default reserved size of 100.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Tokenizer{r: cfg.reservedSize}, nil
}

// R reports the tokenizer's reserved prefix size.
func (t *Tokenizer) R() int { return t.r }

func validateBatch(batch Batch) error {
	for _, seq := range batch {
		for _, u := range seq {
			if u < 0 {
				return ErrMalformedBatch
			}
		}
	}
	return nil
}
