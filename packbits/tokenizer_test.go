package packbits

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
				name:  "runs_and_literal",
				input: Batch{{0, 0, 0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 3, 4, 5, 6}},
				want:  Batch{{4, 100, 2, 101, 6, 102, 0, 4, 103, 104, 105, 106}},
			},
			{
				name:  "empty_sequence",
				input: Batch{{}},
				want:  Batch{{}},
			},
			{
				name:  "single_unit",
				input: Batch{{7}},
				want:  Batch{{0, 1, 107}},
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
		{0, 0, 0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 3, 4, 5, 6},
		{},
		{9},
		{1, 2, 3, 4, 5},
		{1, 1, 1, 1, 1},
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

func TestLiteralChunking(t *testing.T) {
	tok, err := New(WithReservedSize(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// R=5 means max literal/run length 4; 6 distinct units should split
	// into two literal blocks.
	input := Sequence{1, 2, 3, 4, 5, 6}
	encoded, err := tok.Encode(Batch{input})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := Batch{{0, 4, 6, 7, 8, 9, 0, 2, 10, 11}}
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
		{{0}},         // literal marker with no length
		{{0, 0}},      // literal length 0
		{{0, 2, 100}}, // literal length 2 but only 1 unit follows
		{{1}},         // run with no unit
		{{1, 5}},      // shifted unit below R
	}
	for _, c := range cases {
		if _, err := tok.Decode(c); err == nil {
			t.Errorf("Decode(%v): want error, got nil", c)
		}
	}
}
