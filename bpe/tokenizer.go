// Package bpe implements the FastBPE tokenizer: a trainable Byte-Pair
// Encoding codec over sequences of non-negative integer units.
//
// # Overview
//
// FastBPE learns an ordered table of merge rules from a training batch
// (Fit), then uses that table two ways: an expansion cache maps every
// merged unit back down to the initial units it represents (for Decode),
// and an encode trie lets Encode greedily match the longest known merge at
// each position in a single left-to-right pass (for Encode). Fit itself
// runs an incremental algorithm — a doubly linked list per training
// sequence, an index from pair to occurrence positions, and a lazy
// max-heap of pair counts — so that each merge touches only the
// neighborhood of the positions it changes instead of rescanning the whole
// corpus.
//
// # Basic usage
//
//	t, err := bpe.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := t.Fit(batch, 300); err != nil {
//	    log.Fatal(err)
//	}
//	encoded, _ := t.Encode(batch)
//	decoded, _ := t.Decode(encoded)
package bpe

import "github.com/agentstation/unittok"

// Batch, Sequence, and Unit alias the shared unittok types so the rest of
// this package can refer to them without an import qualifier.
type (
	Batch    = unittok.Batch
	Sequence = unittok.Sequence
	Unit     = unittok.Unit
)

// Rule is one learned merge: units A and B combine into the fresh unit C.
// Rules are ordered; a rule's position in the table is its priority.
type Rule struct {
	A, B, C int
}

// expansionCache maps a unit to the sequence of initial units it fully
// expands to. It is total: get defaults an unknown unit to itself.
type expansionCache map[int][]int

func (c expansionCache) get(u int) []int {
	if exp, ok := c[u]; ok {
		return exp
	}
	return []int{u}
}

// Tokenizer is a trainable FastBPE codec. The zero value is not usable;
// construct one with New.
type Tokenizer struct {
	tieBreak TieBreakFunc

	fitted     bool
	rules      []Rule
	expansion  expansionCache
	trieRoot   *trieNode
	maxUnitSeen int
}

// New constructs an unfitted Tokenizer. Call Fit or Load before Encode,
// Decode, or Save.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Tokenizer{tieBreak: cfg.tieBreak}, nil
}

// Fitted reports whether the tokenizer has a usable rule table, either
// from Fit or from Load.
func (t *Tokenizer) Fitted() bool { return t.fitted }

// Rules returns a copy of the learned merge-rule table, in priority order.
func (t *Tokenizer) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

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
