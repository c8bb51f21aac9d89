package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoFlags struct {
	tokenizer string
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show metadata about a trained tokenizer",
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoFlags.tokenizer, "tokenizer", "", "path to a trained tokenizer artifact (required)")
	_ = infoCmd.MarkFlagRequired("tokenizer")
}

func runInfo(cmd *cobra.Command, args []string) error {
	enc, err := loadEncoder(infoFlags.tokenizer)
	if err != nil {
		return err
	}

	stat, err := os.Stat(infoFlags.tokenizer)
	if err != nil {
		return fmt.Errorf("bpetok: stat %s: %w", infoFlags.tokenizer, err)
	}

	fmt.Printf("vocab size: %d\n", enc.VocabSize())
	fmt.Printf("artifact size: %s\n", humanize.Bytes(uint64(stat.Size())))
	return nil
}
