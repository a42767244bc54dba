package bpe

import "container/heap"

// heapEntry is a candidate (pair, count) observation pushed onto the lazy
// max-heap during Fit. Entries may go stale the moment the recorded pair's
// live count in a pairIndex changes; staleness is detected by comparing
// count against the index at pop time rather than eagerly fixing up the
// heap (see mergeHeap.popValid).
type heapEntry struct {
	count int
	pair  pairKey
}

// mergeHeap is a max-heap on count, ties broken by a caller-supplied
// TieBreakFunc so that Fit is reproducible across runs on identical input.
type mergeHeap struct {
	items    []heapEntry
	tieBreak TieBreakFunc
}

func newMergeHeap(tieBreak TieBreakFunc) *mergeHeap {
	h := &mergeHeap{
		items:    make([]heapEntry, 0, defaultHeapPrealloc),
		tieBreak: tieBreak,
	}
	heap.Init(h)
	return h
}

func (h *mergeHeap) Len() int { return len(h.items) }

func (h *mergeHeap) Less(i, j int) bool {
	if h.items[i].count != h.items[j].count {
		return h.items[i].count > h.items[j].count
	}
	return h.tieBreak([2]int{h.items[i].pair.a, h.items[i].pair.b}, [2]int{h.items[j].pair.a, h.items[j].pair.b})
}

func (h *mergeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *mergeHeap) Push(x any) { h.items = append(h.items, x.(heapEntry)) }

func (h *mergeHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	return e
}

func (h *mergeHeap) push(e heapEntry) { heap.Push(h, e) }

// popValid pops entries until it finds one whose count still matches the
// live count in idx (the winner), or the heap empties. Stale entries are
// simply discarded rather than fixed up in place.
func (h *mergeHeap) popValid(idx *pairIndex) (pairKey, int, bool) {
	for h.Len() > 0 {
		e := heap.Pop(h).(heapEntry)
		if idx.count(e.pair) == e.count && e.count > 0 {
			return e.pair, e.count, true
		}
	}
	return pairKey{}, 0, false
}
