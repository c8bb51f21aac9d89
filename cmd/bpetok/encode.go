package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textshape/bpe/bpe"
)

var encodeFlags struct {
	tokenizer string
	input     string
	workers   int
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode text to token ids",
	RunE:  runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeFlags.tokenizer, "tokenizer", "", "path to a trained tokenizer artifact (required)")
	f.StringVar(&encodeFlags.input, "input", "", "path to the text to encode (required)")
	f.IntVar(&encodeFlags.workers, "workers", 1, "goroutines to use for parallel line encoding")
	_ = encodeCmd.MarkFlagRequired("tokenizer")
	_ = encodeCmd.MarkFlagRequired("input")
}

func runEncode(cmd *cobra.Command, args []string) error {
	enc, err := loadEncoder(encodeFlags.tokenizer)
	if err != nil {
		return err
	}

	in, err := os.Open(encodeFlags.input)
	if err != nil {
		return fmt.Errorf("bpetok: open %s: %w", encodeFlags.input, err)
	}
	defer in.Close()

	lines, err := enc.ParallelEncodeLines(in, encodeFlags.workers)
	if err != nil {
		return err
	}

	for _, ids := range lines {
		fmt.Println(joinIDs(ids))
	}
	return nil
}

func loadEncoder(path string) (*bpe.Encoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bpetok: open %s: %w", path, err)
	}
	defer f.Close()

	artifact, err := bpe.LoadArtifact(f)
	if err != nil {
		return nil, err
	}
	return bpe.NewEncoder(artifact)
}

func joinIDs(ids bpe.ByteToken) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " ")
}
