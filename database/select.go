package database

import (
	"bufio"
	"io"

	"flatdb/dberror"
	"flatdb/parser"
	"flatdb/schema"
)

// Select prints every column of every row:
//
//	id int|name varchar(10)
//	1|a
//	2|b
func (t *Table) Select(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw, t.Columns, true)
	bw.WriteString("\n")

	for i := 0; i < t.RowCount; i++ {
		writeRow(bw, t.Columns, i, true)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// SelectColumns prints the named columns, in table order. Names that match
// no column are ignored.
//
// With a where clause a row is printed only when its where-column value
// differs from the clause value, both read as integers; the operator token
// itself is not interpreted. Without a where clause every row is printed.
func (t *Table) SelectColumns(w io.Writer, names []string, where *parser.Condition) error {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var projected []*schema.Column
	for _, c := range t.Columns {
		if wanted[c.Name] {
			projected = append(projected, c)
		}
	}

	show := make([]bool, t.RowCount)
	for i := range show {
		show[i] = true
	}
	if where != nil && len(projected) > 0 {
		col, ok := t.Column(where.Column)
		if !ok {
			return dberror.Resolution("COLUMN_NOT_FOUND", where.Column,
				"!Failed to query table "+t.Name+" because attribute "+where.Column+" does not exist.")
		}
		target, err := leadingInt(where.Value)
		if err != nil {
			return err
		}
		for i := range show {
			v, err := leadingInt(col.Values[i])
			if err != nil {
				return err
			}
			show[i] = v != target
		}
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, projected, true)
	bw.WriteString("\n")

	for i := 0; i < t.RowCount; i++ {
		if !show[i] || len(projected) == 0 {
			continue
		}
		writeRow(bw, projected, i, true)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// writeHeader writes "name type[(size)]" entries separated by '|'. When
// first is false every entry, including the first, is prefixed with '|'.
func writeHeader(bw *bufio.Writer, columns []*schema.Column, first bool) {
	for _, c := range columns {
		if !first {
			bw.WriteString("|")
		}
		first = false
		bw.WriteString(c.Descriptor())
	}
}

// writeRow writes the displayed values of row i separated by '|', with the
// same prefix rule as writeHeader.
func writeRow(bw *bufio.Writer, columns []*schema.Column, i int, first bool) {
	for _, c := range columns {
		if !first {
			bw.WriteString("|")
		}
		first = false
		bw.WriteString(c.Display(i))
	}
}
