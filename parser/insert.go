package parser

import (
	"strings"

	"flatdb/dberror"
)

const valuesPrefix = "values("

// ParseInsertHead reads "into <name>" after the insert keyword.
func ParseInsertHead(s *Stream) (string, error) {
	if _, err := expect(s, "EXPECTED_INTO", "into"); err != nil {
		return "", err
	}
	return next(s)
}

// ParseValues reads the value list of an INSERT for a table of columnCount
// columns. Two shapes are accepted:
//
//	values(1,"a");          one token
//	values(1, "a");         one token per column
//
// In the second shape the number of tokens consumed is columnCount: the
// first starts with "values(", the middle ones end with ',' and the last
// ends with ");".
func ParseValues(s *Stream, columnCount int) ([]string, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(tok, ";") {
		return parseValuesLine(tok, columnCount)
	}

	values := make([]string, 0, columnCount)
	for i := 0; i < columnCount; i++ {
		if i > 0 {
			if tok, err = next(s); err != nil {
				return nil, err
			}
		}

		v := tok
		if i == 0 {
			if !strings.HasPrefix(v, valuesPrefix) {
				return nil, dberror.Syntax("EXPECTED_VALUES", tok)
			}
			v = v[len(valuesPrefix):]
		}

		if i == columnCount-1 {
			if !strings.HasSuffix(v, ");") {
				return nil, dberror.Syntax("EXPECTED_CLOSE", tok)
			}
			v = v[:len(v)-2]
		} else {
			if !strings.HasSuffix(v, ",") {
				return nil, dberror.Syntax("EXPECTED_COMMA", tok)
			}
			v = v[:len(v)-1]
		}
		values = append(values, v)
	}
	return values, nil
}

// parseValuesLine splits the one-token shape. Values beyond columnCount are
// ignored; too few values is a syntax error.
func parseValuesLine(tok string, columnCount int) ([]string, error) {
	_, rest, found := strings.Cut(tok, valuesPrefix)
	if !found {
		return nil, dberror.Syntax("EXPECTED_VALUES", tok)
	}

	values := make([]string, 0, columnCount)
	for i := 0; i < columnCount; i++ {
		if v, tail, ok := strings.Cut(rest, ","); ok {
			values = append(values, v)
			rest = tail
			continue
		}
		if !strings.HasSuffix(rest, ");") {
			return nil, dberror.Syntax("EXPECTED_CLOSE", tok)
		}
		values = append(values, rest[:len(rest)-2])
		rest = ""
	}
	return values, nil
}
