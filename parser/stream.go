package parser

import (
	"bufio"
	"io"
	"strings"
)

// Stream is the shared input cursor of a session: whitespace separated
// tokens read lazily, line by line, from one reader.
type Stream struct {
	r    *bufio.Reader
	line []string
	eof  bool
}

// NewStream creates a token stream over r.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

// NewStreamString is a shorthand for tests and scripts.
func NewStreamString(s string) *Stream {
	return NewStream(strings.NewReader(s))
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (s *Stream) Next() (string, error) {
	for len(s.line) == 0 {
		if s.eof {
			return "", io.EOF
		}
		if err := s.fill(); err != nil {
			return "", err
		}
	}
	tok := s.line[0]
	s.line = s.line[1:]
	return tok, nil
}

func (s *Stream) fill() error {
	text, err := s.r.ReadString('\n')
	if err == io.EOF {
		s.eof = true
	} else if err != nil {
		return err
	}
	s.line = strings.Fields(text)
	return nil
}

// SkipLine drops the tokens left on the current line.
func (s *Stream) SkipLine() {
	s.line = nil
}

// SkipStatement drops tokens up to and including the next one ending with
// ';'. It is used to resync after a statement whose target does not exist.
func (s *Stream) SkipStatement() {
	for {
		tok, err := s.Next()
		if err != nil || strings.HasSuffix(tok, ";") {
			return
		}
	}
}
