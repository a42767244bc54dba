package bpe

import (
	"log"
	"sort"
)

// Fit learns an ordered merge-rule table from batch, replacing any rules
// previously held by t. batch must contain at least one non-empty
// sequence, and targetVocabSize must exceed the batch's initial
// vocabulary size. On any validation failure t is left unchanged.
//
// The algorithm builds one doubly linked list per training sequence,
// shares a single pairIndex across all of them, and repeatedly pops the
// pair with the highest live count off a lazy max-heap — stale heap
// entries (whose recorded count no longer matches the index) are
// discarded at pop time rather than fixed up eagerly. Applying a merge
// touches only the positions recorded for that pair and their immediate
// neighbors, so the total work across all merges is close to linear in
// corpus size plus merge count rather than quadratic.
//
// If the heap runs dry before targetVocabSize is reached, Fit logs a
// warning and commits the shorter rule table built so far; this is not an
// error.
func (t *Tokenizer) Fit(batch Batch, targetVocabSize int) error {
	if err := validateBatch(batch); err != nil {
		return NewFitError("validate batch", err)
	}

	units := make(map[int]struct{})
	maxInit := -1
	nonEmpty := false
	for _, seq := range batch {
		if len(seq) > 0 {
			nonEmpty = true
		}
		for _, u := range seq {
			units[u] = struct{}{}
			if u > maxInit {
				maxInit = u
			}
		}
	}
	if !nonEmpty || len(units) == 0 {
		return NewFitError("check training data", ErrEmptyTrainingData)
	}

	v0 := len(units)
	if targetVocabSize <= v0 {
		return NewFitError("check target vocabulary size", ErrTargetVocabTooSmall)
	}

	expansion := make(expansionCache, v0)
	for u := range units {
		expansion[u] = []int{u}
	}

	tl, idx := buildTrainList(batch)
	h := newMergeHeap(t.tieBreak)
	for pair, count := range idx.counts {
		h.push(heapEntry{count: count, pair: pair})
	}

	n := targetVocabSize - v0
	rules := make([]Rule, 0, n)

	for len(rules) < n {
		pair, _, ok := h.popValid(idx)
		if !ok {
			log.Printf("bpe: fit: no mergeable pairs remain after %d of %d merges, stopping early", len(rules), n)
			break
		}

		maxInit++
		newUnit := maxInit
		rules = append(rules, Rule{A: pair.a, B: pair.b, C: newUnit})

		merged := make([]int, 0, len(expansion.get(pair.a))+len(expansion.get(pair.b)))
		merged = append(merged, expansion.get(pair.a)...)
		merged = append(merged, expansion.get(pair.b)...)
		expansion[newUnit] = merged

		applyMerge(tl, idx, h, pair, newUnit)
	}

	t.rules = rules
	t.expansion = expansion
	t.maxUnitSeen = maxInit
	t.trieRoot = buildTrie(rules, expansion)
	t.fitted = true
	return nil
}

// applyMerge collapses every still-valid occurrence of pair in tl into
// newUnit, updating idx in place and re-pushing h with every pair whose
// count changed as a side effect. The heap is never fixed up in place —
// stale entries left behind are filtered out lazily by mergeHeap.popValid.
func applyMerge(tl *trainList, idx *pairIndex, h *mergeHeap, pair pairKey, newUnit int) {
	positions := idx.positions[pair]
	snapshot := make([]int, 0, len(positions))
	for p := range positions {
		snapshot = append(snapshot, p)
	}
	sort.Ints(snapshot)

	dirty := make(map[pairKey]struct{}, 2*len(snapshot))

	for _, p := range snapshot {
		j := tl.next[p]
		if !tl.active[p] || j == -1 || !tl.active[j] || tl.unit[p] != pair.a || tl.unit[j] != pair.b {
			continue // stale: already consumed by an earlier occurrence in this same pass
		}

		pPrev := tl.prev[p]
		pNext := tl.next[j]

		if pPrev != -1 {
			oldLeft := pairKey{tl.unit[pPrev], tl.unit[p]}
			idx.remove(oldLeft, pPrev)
			dirty[oldLeft] = struct{}{}
		}
		if pNext != -1 {
			oldRight := pairKey{tl.unit[j], tl.unit[pNext]}
			idx.remove(oldRight, j)
			dirty[oldRight] = struct{}{}
		}

		tl.unit[p] = newUnit
		tl.active[j] = false
		tl.next[p] = pNext
		if pNext != -1 {
			tl.prev[pNext] = p
		}

		if pPrev != -1 {
			newLeft := pairKey{tl.unit[pPrev], newUnit}
			idx.add(newLeft, pPrev)
			dirty[newLeft] = struct{}{}
		}
		if pNext != -1 {
			newRight := pairKey{newUnit, tl.unit[pNext]}
			idx.add(newRight, p)
			dirty[newRight] = struct{}{}
		}
	}

	idx.clear(pair)

	for p2 := range dirty {
		if c := idx.count(p2); c > 0 {
			h.push(heapEntry{count: c, pair: p2})
		}
	}
}
