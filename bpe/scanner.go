package bpe

import (
	"bufio"
	"bytes"
	"io"
)

// scanLinesKeepEnds is a bufio.SplitFunc like bufio.ScanLines but keeps the
// trailing '\n' attached to each token, like iterating over a Python text
// file, so encode/decode round-trips a file's line breaks instead of
// silently dropping every newline. Only '\n' ends a line; a lone '\r' or
// other Unicode line separator does not.
func scanLinesKeepEnds(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[0 : i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Scanner provides streaming line-by-line encoding over an io.Reader,
// following the bufio.Scanner pattern: call Scan in a loop, then read
// Tokens/Line until Scan returns false.
type Scanner struct {
	enc     *Encoder
	scanner *bufio.Scanner
	tokens  ByteToken
	line    string
	err     error
}

// NewScanner wraps r for streaming encode, one line at a time.
func (e *Encoder) NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(scanLinesKeepEnds)
	return &Scanner{enc: e, scanner: s}
}

// Scan advances to the next line and encodes it. Returns false at EOF or
// on a read error.
func (s *Scanner) Scan() bool {
	if !s.scanner.Scan() {
		s.err = s.scanner.Err()
		return false
	}
	s.line = s.scanner.Text()
	s.tokens = s.enc.Encode(s.line)
	return true
}

// Tokens returns the ids produced by the most recent Scan.
func (s *Scanner) Tokens() ByteToken { return s.tokens }

// Line returns the raw line text that produced the current tokens.
func (s *Scanner) Line() string { return s.line }

// Err returns the first error encountered while scanning, if any.
func (s *Scanner) Err() error { return s.err }

// EncodeIterable lazily encodes r line by line, invoking yield with each
// line's token ids. It stops and returns yield's error if yield returns
// one, or a read error from r.
func (e *Encoder) EncodeIterable(r io.Reader, yield func(ByteToken) error) error {
	scanner := e.NewScanner(r)
	for scanner.Scan() {
		if err := yield(scanner.Tokens()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
