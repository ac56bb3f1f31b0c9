package parser

// ParseAlterHead reads "TABLE <name> ADD" after the ALTER keyword.
func ParseAlterHead(s *Stream) (string, error) {
	if _, err := expect(s, "EXPECTED_TABLE", "TABLE"); err != nil {
		return "", err
	}
	name, err := next(s)
	if err != nil {
		return "", err
	}
	if _, err := expect(s, "EXPECTED_ADD", "ADD"); err != nil {
		return "", err
	}
	return name, nil
}

// ParseAlterColumn reads the "<name> <type>;" pair of ALTER TABLE ... ADD.
func ParseAlterColumn(s *Stream) (ColumnDef, error) {
	name, err := next(s)
	if err != nil {
		return ColumnDef{}, err
	}
	typeTok, err := nextTerminated(s, "MISSING_SEMICOLON")
	if err != nil {
		return ColumnDef{}, err
	}
	return columnDef(name, typeTok)
}
