package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/unittok/bpe"
)

var (
	decRulesPath string
	decInput     string
	decOutput    string
	decFormat    string
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Reverse encode using a merge-rule table",
		Long: `Decode reads a batch (from --input, or stdin if omitted), expands
each unit using the merge-rule table loaded from --rules, and writes the
result to --output (or stdout if omitted).`,
		Example: `  unittok bpe decode --rules rules.json --input encoded.txt`,
		RunE:    runDecode,
	}

	cmd.Flags().StringVar(&decRulesPath, "rules", "", "path to a rule table written by fit (required)")
	cmd.Flags().StringVar(&decInput, "input", "", "input batch file (default stdin)")
	cmd.Flags().StringVar(&decOutput, "output", "", "output batch file (default stdout)")
	cmd.Flags().StringVar(&decFormat, "format", "space", "stdout format when --output is omitted: space, newline, json")
	cmd.MarkFlagRequired("rules")

	return cmd
}

func runDecode(_ *cobra.Command, _ []string) error {
	t, err := bpe.New()
	if err != nil {
		return fmt.Errorf("construct tokenizer: %w", err)
	}
	if err := t.Load(decRulesPath); err != nil {
		return fmt.Errorf("load rules: %w", err)
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
