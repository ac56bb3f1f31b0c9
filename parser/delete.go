package parser

import "flatdb/dberror"

// ParseDeleteHead reads "from <name>" after the delete keyword.
func ParseDeleteHead(s *Stream) (string, error) {
	if _, err := expect(s, "EXPECTED_FROM", "from"); err != nil {
		return "", err
	}
	return next(s)
}

// ParseWhere reads "where <col> <op> <value>;". The operator is a single
// character; which operators match anything is up to the caller.
func ParseWhere(s *Stream) (*Condition, error) {
	if _, err := expect(s, "EXPECTED_WHERE", "where"); err != nil {
		return nil, err
	}
	return parseCondition(s)
}

func parseCondition(s *Stream) (*Condition, error) {
	column, err := next(s)
	if err != nil {
		return nil, err
	}
	op, err := next(s)
	if err != nil {
		return nil, err
	}
	if len(op) != 1 {
		return nil, dberror.Syntax("INVALID_OPERATOR", op)
	}
	value, err := nextTerminated(s, "MISSING_SEMICOLON")
	if err != nil {
		return nil, err
	}
	return &Condition{Column: column, Op: op, Value: value}, nil
}
