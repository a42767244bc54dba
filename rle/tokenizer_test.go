package rle

import (
	"reflect"
	"testing"
)

func TestEncode(t *testing.T) {
	testGroups := map[string][]struct {
		name    string
		input   Batch
		want    Batch
		wantErr error
	}{
		"basic": {
			{
				name:  "mixed_runs",
				input: Batch{{0, 1, 2, 2, 3, 3, 3}},
				want:  Batch{{1, 100, 1, 101, 2, 102, 3, 103}},
			},
			{
				name:  "empty_sequence",
				input: Batch{{}},
				want:  Batch{{}},
			},
		},
		"errors": {
			{
				name:    "negative_unit",
				input:   Batch{{0, -1}},
				wantErr: ErrMalformedBatch,
			},
		},
	}

	for group, cases := range testGroups {
		t.Run(group, func(t *testing.T) {
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					tok, err := New()
					if err != nil {
						t.Fatalf("New() error = %v", err)
					}

					got, err := tok.Encode(tc.input)
					if tc.wantErr != nil {
						if err == nil {
							t.Fatalf("Encode() error = nil, want %v", tc.wantErr)
						}
						return
					}
					if err != nil {
						t.Fatalf("Encode() error = %v", err)
					}
					if !reflect.DeepEqual(got, tc.want) {
						t.Errorf("Encode() = %v, want %v", got, tc.want)
					}
				})
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []Sequence{
		{0, 1, 2, 2, 3, 3, 3},
		{},
		{5},
		{7, 7, 7, 7, 7, 7, 7, 7},
	}

	tok, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, seq := range inputs {
		encoded, err := tok.Encode(Batch{seq})
		if err != nil {
			t.Fatalf("Encode(%v) error = %v", seq, err)
		}
		decoded, err := tok.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if !reflect.DeepEqual(decoded, Batch{seq}) {
			t.Errorf("round trip for %v = %v, want %v", seq, decoded, Batch{seq})
		}
	}
}

func TestLongRunChunking(t *testing.T) {
	tok, err := New(WithReservedSize(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// R=5 means max run length 4; 10 repeats of 1 should chunk into 4+4+2.
	input := Sequence{}
	for i := 0; i < 10; i++ {
		input = append(input, 1)
	}

	encoded, err := tok.Encode(Batch{input})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := Batch{{4, 6, 4, 6, 2, 6}}
	if !reflect.DeepEqual(encoded, want) {
		t.Errorf("Encode() = %v, want %v", encoded, want)
	}

	decoded, err := tok.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, Batch{input}) {
		t.Errorf("Decode() = %v, want %v", decoded, Batch{input})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tok, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cases := []Batch{
		{{1}},          // odd length
		{{0, 100}},     // run length 0
		{{1, 5}},       // shifted unit below R
		{{1000, 100}},  // run length exceeds R-1
	}
	for _, c := range cases {
		if _, err := tok.Decode(c); err == nil {
			t.Errorf("Decode(%v): want error, got nil", c)
		}
	}
}

func TestWithReservedSizeInvalid(t *testing.T) {
	if _, err := New(WithReservedSize(1)); err == nil {
		t.Error("New(WithReservedSize(1)): want error, got nil")
	}
}
