package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bpecmd "github.com/agentstation/unittok/bpe/cmd/bpe"
	packbitscmd "github.com/agentstation/unittok/packbits/cmd/packbits"
	rlecmd "github.com/agentstation/unittok/rle/cmd/rle"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "unittok",
	Short: "A family of integer-sequence tokenizer CLIs",
	Long: `unittok is a CLI tool for tokenizing sequences of non-negative
integer units.

This tool provides a unified interface for three tokenizers, each
available as a subcommand with its own operations:
  - bpe:       Fast byte-pair-encoding tokenizer (trainable)
  - rle:       Run-length tokenizer (stateless)
  - packbits:  PackBits tokenizer (stateless)`,
	Example: `  # Learn BPE merges and save the rule table
  unittok bpe fit corpus.txt --target-vocab 300 --save rules.json

  # Encode with the learned rules
  unittok bpe encode --rules rules.json --input corpus.txt

  # Run-length encode
  unittok rle encode --input corpus.txt`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("unittok version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bpecmd.Command())
	rootCmd.AddCommand(rlecmd.Command())
	rootCmd.AddCommand(packbitscmd.Command())
}
