package bpe

import "testing"

func buildTinyArtifact(t *testing.T) *Artifact {
	t.Helper()
	trainer, err := NewTrainer(
		WithVocabSize(baseByteVocabSize+3),
		WithSpecialTokens([]string{"<|endoftext|>"}),
	)
	if err != nil {
		t.Fatal(err)
	}
	specials := newSpecialTokenMap([]string{"<|endoftext|>"})
	counter := CountPreTokens("low lower lowest low lower", specials)
	artifact, err := trainer.Train(counter)
	if err != nil {
		t.Fatal(err)
	}
	return artifact
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	text := "lower lowest"
	ids := enc.Encode(text)
	got := enc.Decode(ids)

	if got != text {
		t.Fatalf("round trip mismatch: got %q want %q", got, text)
	}
}

func TestEncodeSpecialTokenIsAtomic(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}

	ids := enc.Encode("low<|endoftext|>lower")
	specialID, ok := enc.SpecialTokenID("<|endoftext|>")
	if !ok {
		t.Fatal("expected <|endoftext|> to be registered")
	}

	found := false
	for _, id := range ids {
		if id == specialID {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the special token id %d among %v", specialID, ids)
	}

	if enc.Decode(ids) != "low<|endoftext|>lower" {
		t.Errorf("decode mismatch: %q", enc.Decode(ids))
	}
}

func TestEncodeEmptyString(t *testing.T) {
	artifact := buildTinyArtifact(t)
	enc, err := NewEncoder(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if ids := enc.Encode(""); len(ids) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", ids)
	}
}

func TestEncodeCacheConsistentWithUncached(t *testing.T) {
	artifact := buildTinyArtifact(t)
	cached, err := NewEncoder(artifact, WithCacheSize(defaultCacheSize))
	if err != nil {
		t.Fatal(err)
	}
	uncached, err := NewEncoder(artifact, WithCacheSize(0))
	if err != nil {
		t.Fatal(err)
	}

	text := "lower lowest lower"
	a := cached.Encode(text)
	b := uncached.Encode(text)

	if len(a) != len(b) {
		t.Fatalf("length mismatch: cached=%v uncached=%v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d: cached=%d uncached=%d", i, a[i], b[i])
		}
	}
}
