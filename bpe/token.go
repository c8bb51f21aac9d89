package bpe

import "encoding/binary"

// TokenID identifies an entry in a Vocabulary: a raw byte (0..255), a
// special token, or a learned merge result.
type TokenID int32

// ByteToken is a sequence of TokenIDs produced by pre-tokenizing and, after
// training or encoding, merging a single pre-token.
type ByteToken []TokenID

// tokenKey is a dense, comparable, hashable representation of a ByteToken
// suitable for use as a map key. Go slices are not comparable, so the ids
// are packed little-endian into a string, which is.
type tokenKey string

// newTokenKey packs a ByteToken into a tokenKey.
func newTokenKey(t ByteToken) tokenKey {
	buf := make([]byte, 4*len(t))
	for i, id := range t {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(id))
	}
	return tokenKey(buf)
}

// token reconstructs the ByteToken a tokenKey was built from.
func (k tokenKey) token() ByteToken {
	n := len(k) / 4
	t := make(ByteToken, n)
	for i := 0; i < n; i++ {
		t[i] = TokenID(binary.LittleEndian.Uint32([]byte(k[i*4 : i*4+4])))
	}
	return t
}

// tokenRecord tracks how many times a distinct pre-token occurred in a
// corpus, and its current (possibly partially merged) id sequence.
type tokenRecord struct {
	ids   ByteToken
	count int64
}

// PreTokenCounter maps distinct pre-tokens (by their raw byte-id sequence)
// to how many times they occurred in a corpus.
type PreTokenCounter map[tokenKey]*tokenRecord

// NewPreTokenCounter returns an empty counter.
func NewPreTokenCounter() PreTokenCounter {
	return make(PreTokenCounter)
}

// Add records one occurrence of a pre-token given as raw bytes.
func (c PreTokenCounter) Add(raw []byte) {
	ids := make(ByteToken, len(raw))
	for i, b := range raw {
		ids[i] = TokenID(b)
	}
	key := newTokenKey(ids)
	if rec, ok := c[key]; ok {
		rec.count++
		return
	}
	c[key] = &tokenRecord{ids: ids, count: 1}
}

// AddSpecial records one occurrence of a special token's reserved id as an
// atomic length-1 pre-token, bypassing raw byte decomposition so it never
// participates in pair counting.
func (c PreTokenCounter) AddSpecial(id TokenID) {
	ids := ByteToken{id}
	key := newTokenKey(ids)
	if rec, ok := c[key]; ok {
		rec.count++
		return
	}
	c[key] = &tokenRecord{ids: ids, count: 1}
}

// Merge folds other's counts into c, summing counts of shared pre-tokens.
func (c PreTokenCounter) Merge(other PreTokenCounter) {
	for key, rec := range other {
		if existing, ok := c[key]; ok {
			existing.count += rec.count
			continue
		}
		c[key] = &tokenRecord{ids: rec.ids, count: rec.count}
	}
}
