package bpe

// Train-time and structural defaults.
const (
	// defaultHeapPrealloc sizes the initial capacity of the lazy max-heap
	// used during Fit, avoiding early growth reallocations on corpora that
	// are known to be large.
	defaultHeapPrealloc = 4096

	// defaultTrieChildren sizes the initial capacity of a trie node's
	// children map. Most nodes branch on only a handful of units.
	defaultTrieChildren = 4
)
