package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var corpusFlags struct {
	tokenizer string
	input     string
	output    string
	dtype     string
	workers   int
}

var corpusEncodeCmd = &cobra.Command{
	Use:   "corpus-encode",
	Short: "Encode a corpus into a flat binary array of token ids",
	RunE:  runCorpusEncode,
}

func init() {
	f := corpusEncodeCmd.Flags()
	f.StringVar(&corpusFlags.tokenizer, "tokenizer", "", "path to a trained tokenizer artifact (required)")
	f.StringVar(&corpusFlags.input, "input", "", "path to the corpus to encode (required)")
	f.StringVar(&corpusFlags.output, "output", "", "path to write the packed token array (required)")
	f.StringVar(&corpusFlags.dtype, "dtype", "int32", "element width: int32 or int64")
	f.IntVar(&corpusFlags.workers, "workers", 1, "goroutines to use for parallel line encoding")
	_ = corpusEncodeCmd.MarkFlagRequired("tokenizer")
	_ = corpusEncodeCmd.MarkFlagRequired("input")
	_ = corpusEncodeCmd.MarkFlagRequired("output")
}

func runCorpusEncode(cmd *cobra.Command, args []string) error {
	if corpusFlags.dtype != "int32" && corpusFlags.dtype != "int64" {
		return fmt.Errorf("bpetok: --dtype must be int32 or int64, got %q", corpusFlags.dtype)
	}

	enc, err := loadEncoder(corpusFlags.tokenizer)
	if err != nil {
		return err
	}

	in, err := os.Open(corpusFlags.input)
	if err != nil {
		return fmt.Errorf("bpetok: open %s: %w", corpusFlags.input, err)
	}
	defer in.Close()

	lines, err := enc.ParallelEncodeLines(in, corpusFlags.workers)
	if err != nil {
		return err
	}

	out, err := os.Create(corpusFlags.output)
	if err != nil {
		return fmt.Errorf("bpetok: create %s: %w", corpusFlags.output, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	var total int
	for _, ids := range lines {
		for _, id := range ids {
			if corpusFlags.dtype == "int64" {
				if err := binary.Write(w, binary.LittleEndian, int64(id)); err != nil {
					return fmt.Errorf("bpetok: write token: %w", err)
				}
			} else {
				if err := binary.Write(w, binary.LittleEndian, int32(id)); err != nil {
					return fmt.Errorf("bpetok: write token: %w", err)
				}
			}
			total++
		}
	}

	fmt.Fprintf(os.Stderr, "wrote %d tokens (%s)\n", total, corpusFlags.dtype)
	return nil
}
