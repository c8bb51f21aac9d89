package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/textshape/bpe/bpe"
)

var decodeFlags struct {
	tokenizer string
}

var decodeCmd = &cobra.Command{
	Use:   "decode [ids...]",
	Short: "Decode token ids back to text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFlags.tokenizer, "tokenizer", "", "path to a trained tokenizer artifact (required)")
	_ = decodeCmd.MarkFlagRequired("tokenizer")
}

func runDecode(cmd *cobra.Command, args []string) error {
	enc, err := loadEncoder(decodeFlags.tokenizer)
	if err != nil {
		return err
	}

	ids := make(bpe.ByteToken, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("bpetok: invalid token id %q: %w", a, err)
		}
		ids[i] = bpe.TokenID(n)
	}

	fmt.Println(enc.Decode(ids))
	return nil
}
