package bpe

import (
	"reflect"
	"testing"
)

func TestApplyMergeNonOverlapping(t *testing.T) {
	// "aaaa" merging (a,a) must produce two merged tokens, not three
	// overlapping matches: positions (0,1) and (2,3), never (1,2).
	ids := ByteToken{'a', 'a', 'a', 'a'}
	got := applyMerge(ids, 'a', 'a', 1000)
	want := ByteToken{1000, 1000}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestApplyMergeOddLengthLeavesTrailingToken(t *testing.T) {
	ids := ByteToken{'a', 'a', 'a'}
	got := applyMerge(ids, 'a', 'a', 1000)
	want := ByteToken{1000, 'a'}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestApplyMergeLeavesUnrelatedPairsAlone(t *testing.T) {
	ids := ByteToken{'a', 'b', 'c', 'd'}
	got := applyMerge(ids, 'b', 'c', 1000)
	want := ByteToken{'a', 1000, 'd'}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestApplyMergeShortInputUnchanged(t *testing.T) {
	ids := ByteToken{'a'}
	got := applyMerge(ids, 'a', 'b', 1000)
	if !reflect.DeepEqual(got, ids) {
		t.Fatalf("got %v want %v", got, ids)
	}
}
