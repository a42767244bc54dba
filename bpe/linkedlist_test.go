package bpe

import (
	"reflect"
	"testing"
)

func TestBuildTrainListRoundTrip(t *testing.T) {
	batch := Batch{{0, 1, 0, 1, 2}, {}, {3, 3, 3}}

	tl, idx := buildTrainList(batch)
	heads := sequenceHeads(batch)

	got := tl.collect(heads)
	want := Batch{{0, 1, 0, 1, 2}, {3, 3, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("collect() = %v, want %v (empty sequences are skipped by sequenceHeads)", got, want)
	}

	if c := idx.count(pairKey{0, 1}); c != 2 {
		t.Errorf("count({0,1}) = %d, want 2", c)
	}
	if c := idx.count(pairKey{3, 3}); c != 2 {
		t.Errorf("count({3,3}) = %d, want 2", c)
	}
}
