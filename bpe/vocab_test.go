package bpe

import (
	"bytes"
	"testing"
)

func TestNewVocabularySeedsBytesAndSpecials(t *testing.T) {
	v := NewVocabulary([]string{"<|endoftext|>"})

	if v.Len() != baseByteVocabSize+1 {
		t.Fatalf("expected %d entries, got %d", baseByteVocabSize+1, v.Len())
	}

	b, ok := v.Bytes(65)
	if !ok || !bytes.Equal(b, []byte{65}) {
		t.Errorf("id 65 should be raw byte 65, got %v ok=%v", b, ok)
	}

	special, ok := v.Bytes(TokenID(baseByteVocabSize))
	if !ok || string(special) != "<|endoftext|>" {
		t.Errorf("special token bytes mismatch: %q ok=%v", special, ok)
	}
}

func TestVocabularyAddMergeConcatenatesBytes(t *testing.T) {
	v := NewVocabulary(nil)
	id := v.AddMerge(TokenID('a'), TokenID('b'))

	b, ok := v.Bytes(id)
	if !ok || string(b) != "ab" {
		t.Fatalf("merged bytes = %q, want %q", b, "ab")
	}
	if id != baseByteVocabSize {
		t.Errorf("first merge should take id %d, got %d", baseByteVocabSize, id)
	}
}
