// Package rlecmd provides the rle command for the unittok CLI.
package rlecmd

import (
	"github.com/spf13/cobra"
)

// Command returns the rle command tree for the unittok CLI: stateless
// encode and decode subcommands over the RLE tokenizer.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rle",
		Short: "Run-length tokenizer operations",
		Long: `Apply the RLE tokenizer, a stateless codec that shifts units by
a reserved prefix size and replaces runs of equal units with
(run_length, shifted_unit) pairs.`,
		Example: `  unittok rle encode --input corpus.txt
  unittok rle decode --input encoded.txt`,
	}

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
	)

	return cmd
}
