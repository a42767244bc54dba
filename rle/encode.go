package rle

// Encode shifts every unit in batch by +R and replaces each maximal run of
// equal shifted units with a (run_length, shifted_unit) pair, chunking any
// run longer than R-1 into multiple pairs so every emitted run length fits
// the reserved range.
func (t *Tokenizer) Encode(batch Batch) (Batch, error) {
	if err := validateBatch(batch); err != nil {
		return nil, NewCodecError("encode", err)
	}

	maxRun := t.r - 1
	out := make(Batch, len(batch))
	for i, seq := range batch {
		out[i] = t.encodeSequence(seq, maxRun)
	}
	return out, nil
}

func (t *Tokenizer) encodeSequence(seq Sequence, maxRun int) Sequence {
	out := make(Sequence, 0, len(seq)*2)
	for i := 0; i < len(seq); {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		runLen := j - i
		shifted := seq[i] + t.r

		for runLen > 0 {
			chunk := runLen
			if chunk > maxRun {
				chunk = maxRun
			}
			out = append(out, chunk, shifted)
			runLen -= chunk
		}
		i = j
	}
	return out
}
