package bpe

// trainList is a doubly linked list over the entire training corpus,
// represented as parallel arrays indexed by position id rather than as
// individually heap-allocated nodes. Multiple training sequences share one
// pool; sequence boundaries are marked by prev == -1 / next == -1 so merges
// never cross from one sequence into the next.
//
// "Soft delete" a position by marking active[pos] = false; its prev/next
// links are left dangling until the caller relinks around it. Stale
// pairIndex entries referencing a deleted position are filtered out at use
// time rather than eagerly purged.
type trainList struct {
	unit   []int
	prev   []int
	next   []int
	active []bool
}

// buildTrainList flattens batch into one linked-list pool and returns it
// together with the pairIndex seeded from every adjacent pair in the
// corpus.
func buildTrainList(batch Batch) (*trainList, *pairIndex) {
	total := 0
	for _, seq := range batch {
		total += len(seq)
	}

	tl := &trainList{
		unit:   make([]int, total),
		prev:   make([]int, total),
		next:   make([]int, total),
		active: make([]bool, total),
	}

	idx := newPairIndex()

	pos := 0
	for _, seq := range batch {
		if len(seq) == 0 {
			continue
		}
		start := pos
		for i, u := range seq {
			tl.unit[pos] = u
			tl.active[pos] = true
			if i == 0 {
				tl.prev[pos] = -1
			} else {
				tl.prev[pos] = pos - 1
			}
			if i == len(seq)-1 {
				tl.next[pos] = -1
			} else {
				tl.next[pos] = pos + 1
			}
			pos++
		}
		for p := start; p < pos-1; p++ {
			idx.add(pairKey{tl.unit[p], tl.unit[p+1]}, p)
		}
	}

	return tl, idx
}

// collect walks the surviving nodes of each sequence, starting at the
// given head positions and following next links until -1, and returns
// their units in order, one sequence per head.
func (tl *trainList) collect(heads []int) Batch {
	out := make(Batch, len(heads))
	for i, head := range heads {
		var seq Sequence
		for p := head; p != -1; p = tl.next[p] {
			seq = append(seq, tl.unit[p])
		}
		out[i] = seq
	}
	return out
}

// sequenceHeads returns the starting position of each original sequence in
// batch, skipping empty ones, so callers can walk trainList.next from a
// stable starting point: head positions never move (merges only ever
// collapse into the left node of a pair, so index 0 of a sequence is
// never soft-deleted).
func sequenceHeads(batch Batch) []int {
	heads := make([]int, 0, len(batch))
	pos := 0
	for _, seq := range batch {
		if len(seq) == 0 {
			continue
		}
		heads = append(heads, pos)
		pos += len(seq)
	}
	return heads
}
