package parser

// ParseUpdateHead reads the table name after the update keyword.
func ParseUpdateHead(s *Stream) (string, error) {
	return next(s)
}

// ParseUpdate reads "set <col> = <value> where <col> = <value>;" after the
// table name of an UPDATE.
func ParseUpdate(s *Stream) (*UpdateClause, error) {
	if _, err := expect(s, "EXPECTED_SET", "set"); err != nil {
		return nil, err
	}
	setColumn, err := next(s)
	if err != nil {
		return nil, err
	}
	if _, err := expect(s, "EXPECTED_EQUALS", "="); err != nil {
		return nil, err
	}
	setValue, err := next(s)
	if err != nil {
		return nil, err
	}

	if _, err := expect(s, "EXPECTED_WHERE", "where"); err != nil {
		return nil, err
	}
	whereColumn, err := next(s)
	if err != nil {
		return nil, err
	}
	if _, err := expect(s, "EXPECTED_EQUALS", "="); err != nil {
		return nil, err
	}
	whereValue, err := nextTerminated(s, "MISSING_SEMICOLON")
	if err != nil {
		return nil, err
	}

	return &UpdateClause{
		SetColumn:   setColumn,
		SetValue:    setValue,
		WhereColumn: whereColumn,
		WhereValue:  whereValue,
	}, nil
}
