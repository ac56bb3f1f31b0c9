package database

import (
	"bufio"
	"io"

	"flatdb/dberror"
	"flatdb/parser"
)

// Join resolves both sides of clause case-insensitively and prints the
// nested-loop equality join of the two tables.
func (db *Database) Join(w io.Writer, clause *parser.JoinClause) error {
	left, ok := db.Lookup(clause.LeftTable)
	if !ok {
		return queryTableNotFound(clause.LeftTable)
	}
	right, ok := db.Lookup(clause.RightTable)
	if !ok {
		return queryTableNotFound(clause.RightTable)
	}
	return JoinTables(w, left, right, clause.LeftAttr, clause.RightAttr, clause.Kind)
}

// JoinTables prints the join of left and right on left.leftAttr =
// right.rightAttr (text equality).
//
// Output: the header of left then the header of right, each right entry
// prefixed with '|'; then, for every row i of left and every row j of right
// with equal keys, left's values at i followed by right's values at j. For
// a left outer join a row i that matched nothing is printed once with an
// empty '|'-prefixed placeholder per right column.
func JoinTables(w io.Writer, left, right *Table, leftAttr, rightAttr string, kind parser.JoinKind) error {
	lkey, ok := left.Column(leftAttr)
	if !ok {
		return attributeNotFound(left.Name, leftAttr)
	}
	rkey, ok := right.Column(rightAttr)
	if !ok {
		return attributeNotFound(right.Name, rightAttr)
	}

	bw := bufio.NewWriter(w)
	writeHeader(bw, left.Columns, true)
	writeHeader(bw, right.Columns, false)
	bw.WriteString("\n")

	emitted := 0
	for i := 0; i < left.RowCount; i++ {
		matched := false
		for j := 0; j < right.RowCount; j++ {
			if lkey.Values[i] != rkey.Values[j] {
				continue
			}
			matched = true
			writeRow(bw, left.Columns, i, true)
			writeRow(bw, right.Columns, j, false)
			bw.WriteString("\n")
			emitted++
		}

		if !matched && kind == parser.LeftOuterJoin {
			writeRow(bw, left.Columns, i, true)
			for range right.Columns {
				bw.WriteString("|")
			}
			bw.WriteString("\n")
			emitted++
		}
	}

	left.log.Debug("join", "kind", kind.String(), "right", right.Name, "rows", emitted)
	return bw.Flush()
}

func queryTableNotFound(name string) error {
	return dberror.Resolution("TABLE_NOT_FOUND", name,
		"!Failed to query table "+name+" because it does not exist.")
}

func attributeNotFound(table, attr string) error {
	return dberror.Resolution("COLUMN_NOT_FOUND", attr,
		"!Failed to query table "+table+" because attribute "+attr+" does not exist.")
}
