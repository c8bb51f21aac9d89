// Package bpe implements a trainable byte-pair-encoding subword tokenizer.
// This file collects constants used across the package.
package bpe

// Reserved token-id range.
const (
	baseByteVocabSize = 256 // ids 0..255 are raw bytes
)

// Cache configuration.
const (
	defaultCacheSize = 4096 // encoder pretoken result cache, 0 disables it
)

// Pool configuration.
const (
	defaultTokenBufferCapacity = 64 // initial capacity for per-pretoken id buffers
)

// Chunking configuration.
const (
	defaultChunkSearchWindow = 4096 // bytes read per step when scanning forward for a chunk boundary
)

// Artifact binary format.
const (
	artifactMagic   = "BPE1"
	artifactVersion = 1
)

// SplitSentinel is the document-boundary marker parallel chunking uses to
// avoid splitting a document in half: a chunk boundary is nudged forward to
// just past the next occurrence of this string (or to EOF).
const SplitSentinel = "<|endoftext|>"
