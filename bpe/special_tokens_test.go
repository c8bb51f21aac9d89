package bpe

import (
	"reflect"
	"testing"
)

func TestSplitBySpecialTokensPreservesOrder(t *testing.T) {
	re := specialSplitter([]string{"<|endoftext|>"})
	got := splitBySpecialTokens("hello<|endoftext|>world", re)
	want := []string{"hello", "<|endoftext|>", "world"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSplitBySpecialTokensNoMatch(t *testing.T) {
	re := specialSplitter([]string{"<|endoftext|>"})
	got := splitBySpecialTokens("hello world", re)
	want := []string{"hello world"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestSplitBySpecialTokensLongestFirst(t *testing.T) {
	// A special token that is a prefix of another must not be matched short.
	re := specialSplitter([]string{"<|a|>", "<|a|>x"})
	got := splitBySpecialTokens("<|a|>x", re)
	want := []string{"<|a|>x"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
