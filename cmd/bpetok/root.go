package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bpetok",
	Short: "A trainable byte-pair-encoding subword tokenizer",
	Long: `bpetok trains and applies a byte-pair-encoding subword tokenizer.

It learns a merge list and vocabulary from a corpus, then applies those
merges deterministically to new text. A shared pre-tokenizer splits text
using the GPT-2-style regex and keeps special tokens atomic.`,
	Example: `  # Train a tokenizer
  bpetok train --input corpus.txt --output tok.bin --vocab-size 2000

  # Encode text
  bpetok encode --tokenizer tok.bin --input sample.txt

  # Decode ids
  bpetok decode --tokenizer tok.bin 104 101 108 108 111

  # Show tokenizer metadata
  bpetok info --tokenizer tok.bin

  # List past training runs
  bpetok runs`,
	SilenceUsage: true,
}

// versionCmd prints build version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bpetok version %s\n", version)
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
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(corpusEncodeCmd)
	rootCmd.AddCommand(runsCmd)
}
