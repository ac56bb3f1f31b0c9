package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType represents supported data types
type ColumnType string

const (
	TypeInt     ColumnType = "int"
	TypeFloat   ColumnType = "float"
	TypeChar    ColumnType = "char"
	TypeVarchar ColumnType = "varchar"
)

const (
	// Erase marks a value whose row is deleted but not yet compacted out of
	// the backing file.
	Erase = "ERASE"

	// Null fills a column added by ALTER for rows that existed before it.
	Null = "NULL"
)

// IsText reports whether values of this type carry surrounding quotes and a
// declared size.
func (t ColumnType) IsText() bool {
	return t == TypeChar || t == TypeVarchar
}

// Valid reports whether t is one of the four supported types.
func (t ColumnType) Valid() bool {
	switch t {
	case TypeInt, TypeFloat, TypeChar, TypeVarchar:
		return true
	}
	return false
}

// ParseType parses a declaration token such as "int", "float", "char(10)"
// or "varchar(20)". Text types take their size from the parentheses.
func ParseType(token string) (ColumnType, int, error) {
	base, rest, hasParen := strings.Cut(token, "(")
	switch ColumnType(base) {
	case TypeChar, TypeVarchar:
		if !hasParen {
			return "", 0, fmt.Errorf("type %q: missing size", token)
		}
		sizeStr, _, _ := strings.Cut(rest, ")")
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return "", 0, fmt.Errorf("type %q: invalid size: %w", token, err)
		}
		return ColumnType(base), size, nil
	case TypeInt, TypeFloat:
		if hasParen {
			return "", 0, fmt.Errorf("type %q: unexpected size", token)
		}
		return ColumnType(base), 0, nil
	}
	return "", 0, fmt.Errorf("unknown type %q", token)
}

// StripQuotes drops exactly one leading and one trailing character.
func StripQuotes(value string) string {
	if len(value) < 2 {
		return ""
	}
	return value[1 : len(value)-1]
}
