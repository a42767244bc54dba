// Package unittok defines the shared contract implemented by every unit
// tokenizer in this module: FastBPE, RLE, and PackBits.
package unittok

// Unit is a single non-negative integer token.
type Unit = int

// Sequence is an ordered run of units.
type Sequence = []Unit

// Batch is an ordered collection of sequences. All codecs operate on
// batches: encode and decode preserve batch length and sequence order.
type Batch = []Sequence

// Codec is the contract every tokenizer in this module satisfies.
type Codec interface {
	// Encode transforms batch into its encoded form. It preserves batch
	// length and the order of inner sequences.
	Encode(batch Batch) (Batch, error)

	// Decode reverses Encode for sequences produced by this codec with the
	// same state. decode(encode(x)) == x for in-vocabulary x.
	Decode(batch Batch) (Batch, error)
}

// FileCodec is implemented by codecs that can read and write the
// whitespace-per-line integer file format directly.
type FileCodec interface {
	Codec
	EncodeFromFile(inPath, outPath string) error
	DecodeFromFile(inPath, outPath string) error
}

// Trainable is implemented by codecs that learn state from a corpus before
// they can encode or decode.
type Trainable interface {
	Fit(batch Batch, targetVocabSize int) error
	FitFromFile(path string, targetVocabSize int) error
}

// Persistable is implemented by codecs whose learned state can be
// snapshotted to and restored from disk.
type Persistable interface {
	Save(path string) error
	Load(path string) error
}
