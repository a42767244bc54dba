package packbits

// literalMarker is the reserved value that introduces a literal block.
const literalMarker = 0

// Encode shifts every unit in batch by +R and scans left to right,
// emitting a (run_length, shifted_unit) pair for each maximal run longer
// than 1, and a (0, literal_length, u1, ..., u_literal_length) block for
// each maximal stretch of non-repeating adjacent units in between. Runs
// and literal blocks longer than R-1 are chunked to fit.
func (t *Tokenizer) Encode(batch Batch) (Batch, error) {
	if err := validateBatch(batch); err != nil {
		return nil, NewCodecError("encode", err)
	}

	maxLen := t.r - 1
	out := make(Batch, len(batch))
	for i, seq := range batch {
		out[i] = t.encodeSequence(seq, maxLen)
	}
	return out, nil
}

func (t *Tokenizer) encodeSequence(seq Sequence, maxLen int) Sequence {
	out := make(Sequence, 0, len(seq)*2)
	i := 0
	for i < len(seq) {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		runLen := j - i

		if runLen > 1 {
			shifted := seq[i] + t.r
			remaining := runLen
			for remaining > 0 {
				chunk := remaining
				if chunk > maxLen {
					chunk = maxLen
				}
				out = append(out, chunk, shifted)
				remaining -= chunk
			}
			i = j
			continue
		}

		// Gather a literal block: units with no immediate repeat, capped
		// at maxLen per block. Position k is excluded once it begins a
		// run (seq[k] == seq[k+1]), leaving that run for the next pass.
		litStart := i
		k := i
		for k < len(seq) {
			if k+1 < len(seq) && seq[k+1] == seq[k] {
				break
			}
			k++
			if k-litStart >= maxLen {
				break
			}
		}
		lit := seq[litStart:k]
		out = append(out, literalMarker, len(lit))
		for _, u := range lit {
			out = append(out, u+t.r)
		}
		i = k
	}
	return out
}
