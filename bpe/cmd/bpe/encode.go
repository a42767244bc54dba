package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/unittok/bpe"
)

var (
	encRulesPath string
	encInput     string
	encOutput    string
	encFormat    string
)

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Apply a merge-rule table to a batch",
		Long: `Encode reads a batch (from --input, or stdin if omitted), applies
the merge-rule table loaded from --rules, and writes the result to
--output (or stdout if omitted).`,
		Example: `  unittok bpe encode --rules rules.json --input corpus.txt
  cat corpus.txt | unittok bpe encode --rules rules.json --format json`,
		RunE: runEncode,
	}

	cmd.Flags().StringVar(&encRulesPath, "rules", "", "path to a rule table written by fit (required)")
	cmd.Flags().StringVar(&encInput, "input", "", "input batch file (default stdin)")
	cmd.Flags().StringVar(&encOutput, "output", "", "output batch file (default stdout)")
	cmd.Flags().StringVar(&encFormat, "format", "space", "stdout format when --output is omitted: space, newline, json")
	cmd.MarkFlagRequired("rules")

	return cmd
}

func runEncode(_ *cobra.Command, _ []string) error {
	t, err := bpe.New()
	if err != nil {
		return fmt.Errorf("construct tokenizer: %w", err)
	}
	if err := t.Load(encRulesPath); err != nil {
		return fmt.Errorf("load rules: %w", err)
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
