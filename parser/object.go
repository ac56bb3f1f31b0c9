package parser

import "flatdb/dberror"

// ObjectKind is what CREATE and DROP act on.
type ObjectKind int

const (
	KindDatabase ObjectKind = iota
	KindTable
)

// ParseObjectKind reads the DATABASE or TABLE keyword after CREATE or DROP.
func ParseObjectKind(s *Stream) (ObjectKind, error) {
	tok, err := next(s)
	if err != nil {
		return 0, err
	}
	switch tok {
	case "DATABASE", "database":
		return KindDatabase, nil
	case "TABLE", "table":
		return KindTable, nil
	}
	return 0, dberror.Syntax("EXPECTED_OBJECT", tok)
}

// ParseName reads the "<name>;" that ends CREATE DATABASE, DROP DATABASE,
// DROP TABLE and USE.
func ParseName(s *Stream) (string, error) {
	name, err := nextTerminated(s, "MISSING_SEMICOLON")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", dberror.Syntax("EMPTY_NAME", ";")
	}
	return name, nil
}
