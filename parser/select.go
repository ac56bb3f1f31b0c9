package parser

import (
	"strings"

	"flatdb/dberror"
)

// ParseSelect reads everything after the SELECT keyword:
//
//	* from t;
//	* from t1 a, t2 b where a.x = b.y;
//	* from t1 a inner join t2 b on a.x = b.y;
//	* from t1 a left outer join t2 b on a.x = b.y;
//	c1, c2 from t where c3 != 5;
//	c1, c2 from t;
func ParseSelect(s *Stream) (*SelectStatement, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	stmt := &SelectStatement{}
	if tok != "*" {
		if stmt.Columns, err = parseColumnList(s, tok); err != nil {
			return nil, err
		}
	}

	if _, err := expect(s, "EXPECTED_FROM", "FROM", "from"); err != nil {
		return nil, err
	}
	table, err := next(s)
	if err != nil {
		return nil, err
	}

	if name, ok := trimTerminator(table); ok {
		stmt.Table = name
		return stmt, nil
	}
	stmt.Table = table

	if stmt.Columns != nil {
		if _, err := expect(s, "EXPECTED_WHERE", "where"); err != nil {
			return nil, err
		}
		column, err := next(s)
		if err != nil {
			return nil, err
		}
		op, err := next(s)
		if err != nil {
			return nil, err
		}
		value, err := nextTerminated(s, "MISSING_SEMICOLON")
		if err != nil {
			return nil, err
		}
		stmt.Where = &Condition{Column: column, Op: op, Value: value}
		return stmt, nil
	}

	join, err := parseJoin(s, table)
	if err != nil {
		return nil, err
	}
	stmt.Join = join
	return stmt, nil
}

// parseColumnList reads "c1, c2, c3" starting from the already read first
// token. The list ends at the first token without a trailing ','.
func parseColumnList(s *Stream, first string) ([]string, error) {
	var columns []string
	tok := first
	for strings.HasSuffix(tok, ",") {
		name := tok[:len(tok)-1]
		if name == "" {
			return nil, dberror.Syntax("EMPTY_COLUMN", tok)
		}
		columns = append(columns, name)

		var err error
		if tok, err = next(s); err != nil {
			return nil, err
		}
	}
	return append(columns, tok), nil
}
