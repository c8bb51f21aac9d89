package bpe

import (
	"strings"
	"unicode/utf8"
)

// Encoder applies a trained Artifact's merge rules to new text.
type Encoder struct {
	vocab    *Vocabulary
	merges   MergeList
	specials SpecialTokenMap
	cache    *lruCache
}

// NewEncoder builds an Encoder from a trained Artifact.
func NewEncoder(artifact *Artifact, opts ...EncoderOption) (*Encoder, error) {
	cfg := encoderConfig{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	var cache *lruCache
	if cfg.cacheSize > 0 {
		cache = newLRUCache(cfg.cacheSize)
	}
	return &Encoder{
		vocab:    artifact.Vocabulary,
		merges:   artifact.Merges,
		specials: artifact.Specials,
		cache:    cache,
	}, nil
}

// Encode pre-tokenizes text, keeping special tokens atomic, and applies
// every learned merge rule in order to each pre-token.
func (e *Encoder) Encode(text string) ByteToken {
	out := make(ByteToken, 0, len(text))
	for _, raw := range Pretokenize(text, e.specials) {
		if id, ok := e.specials[string(raw)]; ok {
			out = append(out, id)
			continue
		}
		out = append(out, e.encodeBytes(raw)...)
	}
	return out
}

// encodeBytes merges a single raw byte pre-token, consulting the cache
// first when one is enabled.
func (e *Encoder) encodeBytes(raw []byte) ByteToken {
	ids := make(ByteToken, len(raw))
	for i, b := range raw {
		ids[i] = TokenID(b)
	}
	if e.cache == nil {
		return e.mergeToken(ids)
	}
	key := newTokenKey(ids)

	if cached, ok := e.cache.get(key); ok {
		return cached
	}

	merged := e.mergeToken(ids)
	e.cache.put(key, merged)
	return merged
}

// mergeToken walks the ordered MergeList once, applying each rule's
// non-overlapping replacement across the whole token before moving to the
// next rule. This is the literal contract: the merge that is learned first
// is applied first, not whichever pair is locally cheapest at encode time.
func (e *Encoder) mergeToken(ids ByteToken) ByteToken {
	for _, m := range e.merges {
		if len(ids) < 2 {
			break
		}
		ids = applyMerge(ids, m.A, m.B, m.C)
	}
	return ids
}

// Decode concatenates the literal bytes of each id and decodes the result
// as UTF-8, substituting U+FFFD for any invalid sequence. Decode never
// returns an error.
func (e *Encoder) Decode(ids ByteToken) string {
	buf := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		b, ok := e.vocab.Bytes(id)
		if !ok {
			buf = utf8.AppendRune(buf, utf8.RuneError)
			continue
		}
		buf = append(buf, b...)
	}
	return strings.ToValidUTF8(string(buf), string(utf8.RuneError))
}

// VocabSize reports the number of entries in the encoder's vocabulary.
func (e *Encoder) VocabSize() int {
	return e.vocab.Len()
}

// SpecialTokenID returns the id reserved for a special token, if any.
func (e *Encoder) SpecialTokenID(token string) (TokenID, bool) {
	id, ok := e.specials[token]
	return id, ok
}
