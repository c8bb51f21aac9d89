package bpe

import (
	"sync"
	"unicode"
)

// pretokenScanner replicates, by hand, the GPT-2 pre-tokenizer regex:
//
//	'(?:[sdmt]|ll|ve|re)| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+
//
// Go's regexp package is RE2-based and cannot express the trailing
// negative lookahead, so each alternative is tried in order at the current
// position, exactly as a backtracking regex engine would.
type pretokenScanner struct {
	input []rune
	pos   int
}

var scannerPool = &sync.Pool{
	New: func() any { return &pretokenScanner{} },
}

func getScanner(text string) *pretokenScanner {
	sm := scannerPool.Get().(*pretokenScanner)
	sm.input = []rune(text)
	sm.pos = 0
	return sm
}

func putScanner(sm *pretokenScanner) {
	sm.input = nil
	scannerPool.Put(sm)
}

// scanPreTokens splits text into the substrings the GPT-2 pattern would
// match, in order.
func scanPreTokens(text string) []string {
	if text == "" {
		return nil
	}
	sm := getScanner(text)
	defer putScanner(sm)

	out := make([]string, 0, len(sm.input)/4+1)
	for sm.pos < len(sm.input) {
		out = append(out, sm.matchNext())
	}
	return out
}

var contractionSuffixes = []string{"s", "d", "m", "t", "ll", "ve", "re"}

func (sm *pretokenScanner) matchNext() string {
	if tok := sm.tryContraction(); tok != "" {
		return tok
	}
	if tok := sm.tryRun(unicode.IsLetter); tok != "" {
		return tok
	}
	if tok := sm.tryRun(unicode.IsNumber); tok != "" {
		return tok
	}
	if tok := sm.trySymbolRun(); tok != "" {
		return tok
	}
	return sm.tryWhitespace()
}

// tryContraction matches '(?:[sdmt]|ll|ve|re).
func (sm *pretokenScanner) tryContraction() string {
	if sm.pos >= len(sm.input) || sm.input[sm.pos] != '\'' {
		return ""
	}
	for _, suf := range contractionSuffixes {
		end := sm.pos + 1 + len(suf)
		if end > len(sm.input) {
			continue
		}
		if string(sm.input[sm.pos+1:end]) == suf {
			tok := string(sm.input[sm.pos:end])
			sm.pos = end
			return tok
		}
	}
	return ""
}

// tryRun matches " ?" followed by one-or-more runes satisfying class, used
// for both the letter and number alternatives.
func (sm *pretokenScanner) tryRun(class func(rune) bool) string {
	start := sm.pos
	p := sm.pos
	if p < len(sm.input) && sm.input[p] == ' ' {
		p++
	}
	runStart := p
	for p < len(sm.input) && class(sm.input[p]) {
		p++
	}
	if p == runStart {
		return ""
	}
	sm.pos = p
	return string(sm.input[start:p])
}

// trySymbolRun matches " ?[^\s\p{L}\p{N}]+".
func (sm *pretokenScanner) trySymbolRun() string {
	start := sm.pos
	p := sm.pos
	if p < len(sm.input) && sm.input[p] == ' ' {
		p++
	}
	runStart := p
	for p < len(sm.input) {
		r := sm.input[p]
		if unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsNumber(r) {
			break
		}
		p++
	}
	if p == runStart {
		return ""
	}
	sm.pos = p
	return string(sm.input[start:p])
}

// tryWhitespace matches "\s+(?!\S)" falling back to "\s+". Because the
// first alternative is greedy and then checked against a negative
// lookahead, a backtracking engine gives back exactly one rune when the
// run is followed by a non-whitespace rune and more than one rune matched;
// when only one whitespace rune is available the lookahead alternative
// fails outright and the plain "\s+" alternative takes all of it instead.
func (sm *pretokenScanner) tryWhitespace() string {
	start := sm.pos
	p := sm.pos
	for p < len(sm.input) && unicode.IsSpace(sm.input[p]) {
		p++
	}
	if p == start {
		// Not matched by whitespace at all; this should be unreachable
		// for valid UTF-8 text since every rune is letter, digit, space,
		// or symbol, but guard against exotic runes by consuming one.
		sm.pos = start + 1
		return string(sm.input[start : start+1])
	}

	followedByNonSpace := p < len(sm.input) && !unicode.IsSpace(sm.input[p])
	if followedByNonSpace && p > start+1 {
		p--
	}
	sm.pos = p
	return string(sm.input[start:p])
}
