package bpe

import (
	"strings"
	"testing"
)

func TestScannerPreservesLineTerminators(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	text := "low lower\nlowest low\nlower"
	var decoded strings.Builder
	s := enc.NewScanner(strings.NewReader(text))
	for s.Scan() {
		decoded.WriteString(enc.Decode(s.Tokens()))
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	if got := decoded.String(); got != text {
		t.Fatalf("round trip dropped line terminators: got %q want %q", got, text)
	}
}

func TestEncodeIterablePreservesLineTerminators(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	text := "low\nlower\n"
	var decoded strings.Builder
	err = enc.EncodeIterable(strings.NewReader(text), func(ids ByteToken) error {
		decoded.WriteString(enc.Decode(ids))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := decoded.String(); got != text {
		t.Fatalf("round trip dropped line terminators: got %q want %q", got, text)
	}
}
