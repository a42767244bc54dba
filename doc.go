// Package unittok provides a family of reversible tokenizers over sequences
// of small non-negative integers ("units").
//
// # Overview
//
// Three codecs are provided, each under its own subpackage:
//
//   - unittok/bpe: FastBPE, a trainable Byte-Pair-Encoding tokenizer. This
//     is the core of the module — it learns an ordered table of merge
//     rules from a training batch and then encodes new batches by greedy
//     longest-match against those rules.
//   - unittok/rle: a stateless run-length tokenizer.
//   - unittok/packbits: a stateless PackBits-style tokenizer combining runs
//     and literal blocks.
//
// All three share the Codec contract defined in this package:
//
//	┌──────────────┐     Fit (bpe only)      ┌──────────────────┐
//	│ Training     │ ───────────────────────▶│ Rule table +      │
//	│ Batch        │                          │ expansion cache + │
//	└──────────────┘                          │ encode trie       │
//	                                           └─────────┬─────────┘
//	                                                      │
//	┌──────────────┐        Encode                        ▼
//	│ Input Batch  │ ────────────────────────▶ ┌──────────────────┐
//	└──────────────┘                           │ Encoded Batch     │
//	┌──────────────┐        Decode             └──────────────────┘
//	│ Encoded Batch│ ◀────────────────────────────────────┘
//	└──────────────┘
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
//	encoded, err := t.Encode(batch)
//
// # Error handling
//
// Every package defines its own typed errors following the same shape:
// sentinel values for a small closed taxonomy (empty training data, a
// target vocabulary that is too small, use before Fit/Load, malformed
// batches and files), wrapped in an operation-carrying struct error that
// implements Unwrap.
//
// # Concurrency
//
// Instances are single-writer / many-reader: concurrent Encode/Decode calls
// on a fully-fitted-or-loaded instance are safe, but no call that mutates
// state (Fit, Load) may run concurrently with any other call on the same
// instance.
package unittok
