package bpe

// Decode replaces every unit in batch with its fully-expanded form from the
// expansion cache. Decode is total: a unit with no recorded expansion (one
// outside the fitted vocabulary) decodes to itself. Decode is stateless
// given the expansion cache and safe for concurrent use alongside other
// reads.
func (t *Tokenizer) Decode(batch Batch) (Batch, error) {
	if !t.fitted {
		return nil, NewCodecError("decode", ErrNotFitted)
	}
	if err := validateBatch(batch); err != nil {
		return nil, NewCodecError("decode", err)
	}

	out := make(Batch, len(batch))
	for i, seq := range batch {
		out[i] = t.decodeSequence(seq)
	}
	return out, nil
}

func (t *Tokenizer) decodeSequence(seq Sequence) Sequence {
	total := 0
	for _, u := range seq {
		total += len(t.expansion.get(u))
	}
	out := make(Sequence, 0, total)
	for _, u := range seq {
		out = append(out, t.expansion.get(u)...)
	}
	return out
}
