// Package bpe implements a trainable byte-pair-encoding subword tokenizer.
//
// # Overview
//
// The package has three stages:
//
//  1. Pre-tokenization: text is split on special tokens, then split into
//     words, numbers, punctuation runs, and whitespace using a hand-rolled
//     scanner that replicates the GPT-2 regex pattern exactly, including its
//     trailing negative lookahead.
//  2. Training: a frequency table of pre-tokens is repeatedly reduced by
//     merging the most frequent adjacent byte pair into a new token, until a
//     target vocabulary size is reached.
//  3. Encoding: new text is pre-tokenized the same way, then each pre-token
//     has the learned merges applied to it in the order they were learned.
//
// # Architecture
//
//	┌─────────────┐
//	│  Input Text │
//	└──────┬──────┘
//	       │
//	       ▼
//	┌─────────────────┐     ┌──────────────────┐
//	│ Special Token   │────▶│ Pre-token Scanner│
//	│ Splitting       │     │ (state machine)  │
//	└─────────────────┘     └────────┬─────────┘
//	                                  │
//	                                  ▼
//	                         ┌──────────────────┐
//	                         │ Merge List Sweep │
//	                         │ (encode) or      │
//	                         │ Heap Selection    │
//	                         │ (train)          │
//	                         └────────┬─────────┘
//	                                  │
//	                                  ▼
//	                         ┌──────────────────┐
//	                         │    Token IDs     │
//	                         └──────────────────┘
//
// # Basic usage
//
//	trainer, err := bpe.NewTrainer(bpe.WithVocabSize(2000), bpe.WithSpecialTokens([]string{"<|endoftext|>"}))
//	artifact, err := trainer.TrainFromFile(ctx, "corpus.txt")
//
//	enc, err := bpe.NewEncoder(artifact)
//	ids := enc.Encode("hello, world!")
//	text := enc.Decode(ids)
//
// # Error handling
//
// The package defines three error types: ConfigError, IOError, and
// EncodingError. All wrap an underlying error and support errors.Unwrap.
//
// # Thread safety
//
// Encoder is safe for concurrent use once constructed: its cache is
// protected by a mutex and its vocabulary/merge list are read-only after
// construction. Trainer is not safe for concurrent use; a single Trainer
// processes one corpus at a time, internally parallelizing pre-tokenization.
package bpe
