package bpe

import (
	"regexp"
	"sort"
	"strings"
)

// SpecialTokenMap maps a special token's literal text to its TokenID.
type SpecialTokenMap map[string]TokenID

// newSpecialTokenMap assigns ids to tokens in the order given, starting at
// baseByteVocabSize, matching the allocation NewVocabulary uses.
func newSpecialTokenMap(tokens []string) SpecialTokenMap {
	m := make(SpecialTokenMap, len(tokens))
	id := TokenID(baseByteVocabSize)
	for _, t := range tokens {
		m[t] = id
		id++
	}
	return m
}

// specialSplitter builds a regexp that matches any special token literally,
// longest first so that one special token that is a prefix of another is
// never matched short.
func specialSplitter(tokens []string) *regexp.Regexp {
	if len(tokens) == 0 {
		return nil
	}
	ordered := append([]string(nil), tokens...)
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })
	parts := make([]string, len(ordered))
	for i, t := range ordered {
		parts[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// splitBySpecialTokens splits text on special-token matches while
// preserving the matched tokens as their own segments, in order.
func splitBySpecialTokens(text string, re *regexp.Regexp) []string {
	if text == "" {
		return nil
	}
	if re == nil {
		return []string{text}
	}

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	segments := make([]string, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			segments = append(segments, text[last:start])
		}
		segments = append(segments, text[start:end])
		last = end
	}
	if last < len(text) {
		segments = append(segments, text[last:])
	}
	return segments
}
