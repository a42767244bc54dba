package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/unittok/bpe"
)

var (
	fitTargetVocab int
	fitSavePath    string
)

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit <in-file>",
		Short: "Learn a merge-rule table from a training batch",
		Long: `Fit reads a whitespace-per-line integer batch from in-file and
learns an ordered merge-rule table by repeatedly merging the most frequent
adjacent pair until the target vocabulary size is reached.`,
		Example: `  unittok bpe fit corpus.txt --target-vocab 300 --save rules.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runFit,
	}

	cmd.Flags().IntVar(&fitTargetVocab, "target-vocab", 0, "target vocabulary size (required)")
	cmd.Flags().StringVar(&fitSavePath, "save", "", "path to write the learned rule table (required)")
	cmd.MarkFlagRequired("target-vocab")
	cmd.MarkFlagRequired("save")

	return cmd
}

func runFit(_ *cobra.Command, args []string) error {
	inPath := args[0]

	t, err := bpe.New()
	if err != nil {
		return fmt.Errorf("construct tokenizer: %w", err)
	}

	if err := t.FitFromFile(inPath, fitTargetVocab); err != nil {
		return fmt.Errorf("fit: %w", err)
	}

	if err := t.Save(fitSavePath); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	fmt.Printf("learned %d merge rules, saved to %s\n", len(t.Rules()), fitSavePath)
	return nil
}
