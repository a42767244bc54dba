// Package rle implements the RLE tokenizer: a stateless run-length codec
// over sequences of non-negative integer units.
//
// Encode shifts every unit up by R (the reserved prefix size, default 100)
// and emits consecutive equal runs as (run_length, shifted_unit) pairs,
// splitting any run longer than R-1 into multiple chunks so the run length
// always fits the reserved range. Decode reverses this exactly.
//
//	t, _ := rle.New()
//	encoded, _ := t.Encode(batch)
//	decoded, _ := t.Decode(encoded)
package rle
