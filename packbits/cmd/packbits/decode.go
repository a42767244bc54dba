package packbitscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/unittok/packbits"
)

var (
	decReserved int
	decInput    string
	decOutput   string
	decFormat   string
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "PackBits-decode a batch",
		Example: `  unittok packbits decode --input encoded.txt
  unittok packbits decode --reserved 256 --input encoded.txt`,
		RunE: runDecode,
	}

	cmd.Flags().IntVar(&decReserved, "reserved", 100, "reserved prefix size R")
	cmd.Flags().StringVar(&decInput, "input", "", "input batch file (default stdin)")
	cmd.Flags().StringVar(&decOutput, "output", "", "output batch file (default stdout)")
	cmd.Flags().StringVar(&decFormat, "format", "space", "stdout format when --output is omitted: space, newline, json")

	return cmd
}

func runDecode(_ *cobra.Command, _ []string) error {
	t, err := packbits.New(packbits.WithReservedSize(decReserved))
	if err != nil {
		return fmt.Errorf("construct tokenizer: %w", err)
	}

	batch, err := readInput(decInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, err := t.Decode(batch)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return writeOutput(decOutput, decFormat, out)
}
