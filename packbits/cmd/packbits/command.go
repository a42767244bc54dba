// Package packbitscmd provides the packbits command for the unittok CLI.
package packbitscmd

import (
	"github.com/spf13/cobra"
)

// Command returns the packbits command tree for the unittok CLI: stateless
// encode and decode subcommands over the PackBits tokenizer.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packbits",
		Short: "PackBits tokenizer operations",
		Long: `Apply the PackBits tokenizer, a stateless codec that mixes
run blocks and literal blocks separated by a reserved marker value.`,
		Example: `  unittok packbits encode --input corpus.txt
  unittok packbits decode --input encoded.txt`,
	}

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
	)

	return cmd
}
