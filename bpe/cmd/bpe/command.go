// Package bpecmd provides the bpe command for the unittok CLI.
package bpecmd

import (
	"github.com/spf13/cobra"
)

// Command returns the bpe command tree for the unittok CLI: fit, encode,
// and decode subcommands over the FastBPE tokenizer.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpe",
		Short: "Fast byte-pair-encoding tokenizer operations",
		Long: `Train and apply the Fast BPE tokenizer over batches of
non-negative integer units.

Available commands:
  fit    - Learn a merge-rule table from a training batch
  encode - Apply a merge-rule table to a batch
  decode - Reverse encode using the same merge-rule table`,
		Example: `  # Learn merges and save the rule table
  unittok bpe fit corpus.txt --target-vocab 300 --save rules.json

  # Encode a batch with the learned rules
  unittok bpe encode --rules rules.json --input corpus.txt

  # Decode back
  unittok bpe decode --rules rules.json --input encoded.txt`,
	}

	cmd.AddCommand(
		newFitCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
	)

	return cmd
}
