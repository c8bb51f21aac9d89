package bpe

import (
	"strings"
	"testing"
)

func TestParallelEncodeMatchesSerial(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	lines := []string{
		"low lower\n",
		"lowest low\n",
		"lower lowest low\n",
		"low",
	}
	text := strings.Join(lines, "")

	serial := make([]ByteToken, len(lines))
	for i, line := range lines {
		serial[i] = enc.Encode(line)
	}

	parallel, err := enc.ParallelEncodeLines(strings.NewReader(text), 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(serial) != len(parallel) {
		t.Fatalf("length mismatch: serial=%d parallel=%d", len(serial), len(parallel))
	}
	for i := range serial {
		if len(serial[i]) != len(parallel[i]) {
			t.Fatalf("line %d length mismatch: serial=%v parallel=%v", i, serial[i], parallel[i])
		}
		for j := range serial[i] {
			if serial[i][j] != parallel[i][j] {
				t.Errorf("line %d token %d: serial=%d parallel=%d", i, j, serial[i][j], parallel[i][j])
			}
		}
	}
}

func TestEncodeIterableMatchesParallel(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	text := "low lower\nlowest low\n"

	var iterable []ByteToken
	err = enc.EncodeIterable(strings.NewReader(text), func(ids ByteToken) error {
		iterable = append(iterable, ids)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	parallel, err := enc.ParallelEncodeLines(strings.NewReader(text), 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(iterable) != len(parallel) {
		t.Fatalf("length mismatch: iterable=%d parallel=%d", len(iterable), len(parallel))
	}
	for i := range iterable {
		if len(iterable[i]) != len(parallel[i]) {
			t.Fatalf("line %d length mismatch", i)
		}
		for j := range iterable[i] {
			if iterable[i][j] != parallel[i][j] {
				t.Errorf("line %d token %d: iterable=%d parallel=%d", i, j, iterable[i][j], parallel[i][j])
			}
		}
	}
}

func TestParallelEncodeLinesPreservesLineTerminators(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	text := "low lower\nlowest low\nlower"
	lines, err := enc.ParallelEncodeLines(strings.NewReader(text), 3)
	if err != nil {
		t.Fatal(err)
	}

	var decoded strings.Builder
	for _, ids := range lines {
		decoded.WriteString(enc.Decode(ids))
	}
	if got := decoded.String(); got != text {
		t.Fatalf("round trip dropped line terminators: got %q want %q", got, text)
	}
}
