package bpe

import "testing"

func buildBenchBatch(n int) Batch {
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = i % 8
	}
	return Batch{seq}
}

func BenchmarkFit(b *testing.B) {
	batch := buildBenchBatch(2000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok, err := New()
		if err != nil {
			b.Fatalf("New() error = %v", err)
		}
		if err := tok.Fit(batch, 50); err != nil {
			b.Fatalf("Fit() error = %v", err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	batch := buildBenchBatch(2000)
	tok, err := New()
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	if err := tok.Fit(batch, 50); err != nil {
		b.Fatalf("Fit() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tok.Encode(batch); err != nil {
			b.Fatalf("Encode() error = %v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	batch := buildBenchBatch(2000)
	tok, err := New()
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	if err := tok.Fit(batch, 50); err != nil {
		b.Fatalf("Fit() error = %v", err)
	}
	encoded, err := tok.Encode(batch)
	if err != nil {
		b.Fatalf("Encode() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tok.Decode(encoded); err != nil {
			b.Fatalf("Decode() error = %v", err)
		}
	}
}
