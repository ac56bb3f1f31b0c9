package parser

import (
	"io"
	"strings"

	"flatdb/dberror"
)

// next reads a token, turning end of input into a syntax error: a statement
// cut short is malformed.
func next(s *Stream) (string, error) {
	tok, err := s.Next()
	if err == io.EOF {
		return "", dberror.Syntax("UNEXPECTED_EOF", "<eof>")
	}
	if err != nil {
		return "", dberror.Wrap(err, "READ_FAILED", "Next")
	}
	return tok, nil
}

// expect reads a token that must equal one of want.
func expect(s *Stream, code string, want ...string) (string, error) {
	tok, err := next(s)
	if err != nil {
		return "", err
	}
	for _, w := range want {
		if tok == w {
			return tok, nil
		}
	}
	return "", dberror.Syntax(code, tok)
}

// trimTerminator strips the trailing ';' of a statement's last token.
func trimTerminator(tok string) (string, bool) {
	if !strings.HasSuffix(tok, ";") {
		return tok, false
	}
	return tok[:len(tok)-1], true
}

// nextTerminated reads the last token of a statement and strips its ';'.
func nextTerminated(s *Stream, code string) (string, error) {
	tok, err := next(s)
	if err != nil {
		return "", err
	}
	v, ok := trimTerminator(tok)
	if !ok {
		return "", dberror.Syntax(code, tok)
	}
	return v, nil
}
