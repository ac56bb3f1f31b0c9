package parser

import (
	"strings"

	"flatdb/dberror"
	"flatdb/schema"
)

// CreateTableHead is the part of CREATE TABLE read before the existence
// check: the table name, and the start of the column list when it was glued
// to the name ("t1(a1").
type CreateTableHead struct {
	Name    string
	pending string
}

// Pending returns the part of the name token that belongs to the column
// list, "" when the list starts with its own token.
func (h *CreateTableHead) Pending() string {
	return h.pending
}

// ParseCreateTableHead reads the table name after CREATE TABLE.
func ParseCreateTableHead(s *Stream) (*CreateTableHead, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	head := &CreateTableHead{Name: tok}
	if i := strings.IndexByte(tok, '('); i >= 0 {
		head.Name = tok[:i]
		head.pending = tok[i:]
	}
	return head, nil
}

// ParseColumnDefs reads the column list of CREATE TABLE:
//
//	(a1 int, a2 varchar(20));
//	();
//
// Every type token ends with ',' or, for the last one, ");".
func ParseColumnDefs(s *Stream, head *CreateTableHead) ([]ColumnDef, error) {
	var defs []ColumnDef
	first := true
	for {
		var name string
		if first && head.pending != "" {
			name = head.pending
		} else {
			tok, err := next(s)
			if err != nil {
				return nil, err
			}
			name = tok
		}

		if first {
			if name == "();" {
				return defs, nil
			}
			if !strings.HasPrefix(name, "(") {
				return nil, dberror.Syntax("EXPECTED_COLUMN_LIST", name)
			}
			name = name[1:]
			first = false
		}

		typeTok, err := next(s)
		if err != nil {
			return nil, err
		}

		last := false
		switch {
		case strings.HasSuffix(typeTok, ";"):
			// the ';' and the closing ')'
			typeTok = typeTok[:len(typeTok)-1]
			last = true
		case strings.HasSuffix(typeTok, ","):
		default:
			return nil, dberror.Syntax("EXPECTED_SEPARATOR", typeTok)
		}
		if typeTok == "" {
			return nil, dberror.Syntax("INVALID_TYPE", typeTok)
		}
		typeTok = typeTok[:len(typeTok)-1]

		def, err := columnDef(name, typeTok)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)

		if last {
			return defs, nil
		}
	}
}

func columnDef(name, typeTok string) (ColumnDef, error) {
	typ, size, err := schema.ParseType(typeTok)
	if err != nil {
		synErr := dberror.Syntax("INVALID_TYPE", typeTok)
		synErr.Cause = err
		return ColumnDef{}, synErr
	}
	return ColumnDef{Name: name, Type: typ, Size: size}, nil
}
