// Package packbits implements the PackBits tokenizer: a stateless codec
// over sequences of non-negative integer units that mixes run blocks and
// literal blocks.
//
// Encode shifts every unit up by R (default 100) and scans left to right:
// a run of length greater than 1 is emitted as (run_length, shifted_unit);
// otherwise the longest maximal stretch of non-repeating adjacent units is
// gathered into a literal block and emitted as (0, literal_length, u1,
// u2, ...), using 0 as the literal-block marker. Runs and literal blocks
// longer than R-1 are chunked to fit. Decode reverses this exactly.
//
//	t, _ := packbits.New()
//	encoded, _ := t.Encode(batch)
//	decoded, _ := t.Decode(encoded)
package packbits
