package bpe

// TrainerOption configures a Trainer.
type TrainerOption func(*trainerConfig) error

type trainerConfig struct {
	vocabSize     int
	specialTokens []string
	workers       int
}

// WithVocabSize sets the target vocabulary size (including the 256 raw
// bytes and any special tokens). Training stops once this is reached or no
// mergeable pair remains.
func WithVocabSize(n int) TrainerOption {
	return func(c *trainerConfig) error {
		if n < baseByteVocabSize {
			return NewConfigError("vocab_size", n, ErrVocabTooSmall)
		}
		c.vocabSize = n
		return nil
	}
}

// WithSpecialTokens sets the special tokens, in order, to reserve ids for
// before any merge is learned. Duplicate tokens are rejected.
func WithSpecialTokens(tokens []string) TrainerOption {
	return func(c *trainerConfig) error {
		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if seen[t] {
				return NewConfigError("special_tokens", t, ErrSpecialTokenConflict)
			}
			seen[t] = true
		}
		c.specialTokens = tokens
		return nil
	}
}

// WithTrainWorkers sets how many goroutines parallel pre-tokenization uses
// when training from a file via TrainFromFile. Default is 1 (serial).
func WithTrainWorkers(n int) TrainerOption {
	return func(c *trainerConfig) error {
		if n < 1 {
			return NewConfigError("workers", n, ErrInvalidOption)
		}
		c.workers = n
		return nil
	}
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderConfig) error

type encoderConfig struct {
	cacheSize int
}

// WithCacheSize sets the maximum number of distinct pre-tokens whose
// encoded result is cached. 0 disables the cache.
func WithCacheSize(n int) EncoderOption {
	return func(c *encoderConfig) error {
		if n < 0 {
			return NewConfigError("cache_size", n, ErrInvalidOption)
		}
		c.cacheSize = n
		return nil
	}
}
