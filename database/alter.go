package database

import (
	"flatdb/parser"
	"flatdb/schema"
)

// Alter appends a column and persists. Rows that already exist get
// schema.Null for the new column so every column keeps RowCount values.
func (t *Table) Alter(def parser.ColumnDef) error {
	col := def.Column()
	col.Values = make([]string, t.RowCount)
	for i := range col.Values {
		col.Values[i] = schema.Null
	}

	t.Columns = append(t.Columns, col)
	if err := t.persist(); err != nil {
		t.Columns = t.Columns[:len(t.Columns)-1]
		return err
	}

	t.log.Debug("column added", "column", col.Name, "type", col.Type, "backfilled", t.RowCount)
	return nil
}
