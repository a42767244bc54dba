package bpe_test

import (
	"fmt"
	"log"

	"github.com/agentstation/unittok/bpe"
)

func ExampleTokenizer_Fit() {
	tok, err := bpe.New()
	if err != nil {
		log.Fatal(err)
	}

	batch := bpe.Batch{{0, 1, 0, 1, 2, 0, 1, 2, 3, 0, 1, 2, 3, 4, 0, 1, 2, 3, 4, 5}}
	if err := tok.Fit(batch, 10); err != nil {
		log.Fatal(err)
	}

	fmt.Println(tok.Rules())
	// Output: [{0 1 6} {6 2 7} {7 3 8} {8 4 9}]
}

func ExampleTokenizer_Encode() {
	tok, err := bpe.New()
	if err != nil {
		log.Fatal(err)
	}
	batch := bpe.Batch{{0, 1, 0, 1, 2, 0, 1, 2, 3, 0, 1, 2, 3, 4, 0, 1, 2, 3, 4, 5}}
	if err := tok.Fit(batch, 10); err != nil {
		log.Fatal(err)
	}

	encoded, err := tok.Encode(bpe.Batch{{0, 1, 0, 1, 2, 3, 4, 5}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(encoded)
	// Output: [[6 9 5]]
}
