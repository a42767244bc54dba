package bpe

// pairKey identifies an adjacent pair of units. Being a fixed-size
// comparable struct, it can be used directly as a map key.
type pairKey struct {
	a, b int
}

// pairIndex tracks, for every pair currently present in the training
// corpus, the set of left-hand positions where that pair occurs and the
// materialized count of that set. It is the train-time structure from
// which the lazy max-heap's entries are validated.
type pairIndex struct {
	positions map[pairKey]map[int]struct{}
	counts    map[pairKey]int
}

func newPairIndex() *pairIndex {
	return &pairIndex{
		positions: make(map[pairKey]map[int]struct{}),
		counts:    make(map[pairKey]int),
	}
}

// add records that pair occurs with its left-hand unit at position pos.
func (pi *pairIndex) add(pair pairKey, pos int) {
	set, ok := pi.positions[pair]
	if !ok {
		set = make(map[int]struct{})
		pi.positions[pair] = set
	}
	if _, exists := set[pos]; !exists {
		set[pos] = struct{}{}
		pi.counts[pair]++
	}
}

// remove forgets that pair occurs at position pos, if it was recorded.
func (pi *pairIndex) remove(pair pairKey, pos int) {
	set, ok := pi.positions[pair]
	if !ok {
		return
	}
	if _, exists := set[pos]; exists {
		delete(set, pos)
		pi.counts[pair]--
		if len(set) == 0 {
			delete(pi.positions, pair)
		}
	}
}

// count returns the materialized count for pair (0 if absent).
func (pi *pairIndex) count(pair pairKey) int {
	return pi.counts[pair]
}

// clear drops all bookkeeping for pair, used once a pair has been fully
// merged away.
func (pi *pairIndex) clear(pair pairKey) {
	delete(pi.positions, pair)
	delete(pi.counts, pair)
}
