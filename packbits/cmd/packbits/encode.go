package packbitscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/unittok/packbits"
)

var (
	encReserved int
	encInput    string
	encOutput   string
	encFormat   string
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "PackBits-encode a batch",
		Example: `  unittok packbits encode --input corpus.txt
  unittok packbits encode --reserved 256 --input corpus.txt`,
		RunE: runEncode,
	}

	cmd.Flags().IntVar(&encReserved, "reserved", 100, "reserved prefix size R")
	cmd.Flags().StringVar(&encInput, "input", "", "input batch file (default stdin)")
	cmd.Flags().StringVar(&encOutput, "output", "", "output batch file (default stdout)")
	cmd.Flags().StringVar(&encFormat, "format", "space", "stdout format when --output is omitted: space, newline, json")

	return cmd
}

func runEncode(_ *cobra.Command, _ []string) error {
	t, err := packbits.New(packbits.WithReservedSize(encReserved))
	if err != nil {
		return fmt.Errorf("construct tokenizer: %w", err)
	}

	batch, err := readInput(encInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, err := t.Encode(batch)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return writeOutput(encOutput, encFormat, out)
}
