package packbits

// Decode reverses Encode: it reads a (0, literal_length, u1, ...) literal
// block or a (run_length, shifted_unit) run block at each step and emits
// the corresponding unshifted units.
func (t *Tokenizer) Decode(batch Batch) (Batch, error) {
	if err := validateBatch(batch); err != nil {
		return nil, NewCodecError("decode", err)
	}

	out := make(Batch, len(batch))
	for i, seq := range batch {
		dec, err := t.decodeSequence(seq)
		if err != nil {
			return nil, NewCodecError("decode", err)
		}
		out[i] = dec
	}
	return out, nil
}

func (t *Tokenizer) decodeSequence(seq Sequence) (Sequence, error) {
	out := make(Sequence, 0, len(seq))
	i := 0
	for i < len(seq) {
		head := seq[i]

		if head == literalMarker {
			if i+1 >= len(seq) {
				return nil, ErrMalformedBlock
			}
			litLen := seq[i+1]
			if litLen < 1 || litLen > t.r-1 {
				return nil, ErrMalformedBlock
			}
			if i+2+litLen > len(seq) {
				return nil, ErrMalformedBlock
			}
			for k := 0; k < litLen; k++ {
				shifted := seq[i+2+k]
				if shifted < t.r {
					return nil, ErrMalformedBlock
				}
				out = append(out, shifted-t.r)
			}
			i += 2 + litLen
			continue
		}

		runLen := head
		if runLen < 1 || runLen > t.r-1 {
			return nil, ErrMalformedBlock
		}
		if i+1 >= len(seq) {
			return nil, ErrMalformedBlock
		}
		shifted := seq[i+1]
		if shifted < t.r {
			return nil, ErrMalformedBlock
		}
		unit := shifted - t.r
		for k := 0; k < runLen; k++ {
			out = append(out, unit)
		}
		i += 2
	}
	return out, nil
}
