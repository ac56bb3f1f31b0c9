package database

import (
	"fmt"

	"flatdb/dberror"
	"flatdb/schema"
)

// Insert appends one row, one value per column, and persists. On any
// failure every column is cut back to the previous row count. The tombstone
// token is not accepted as a value.
func (t *Table) Insert(values []string) error {
	if len(values) != len(t.Columns) {
		err := dberror.Syntax("VALUE_COUNT", fmt.Sprintf("%d values for %d columns", len(values), len(t.Columns)))
		return err.WithOperation("Insert")
	}

	for _, v := range values {
		if v == schema.Erase {
			return reservedValue("insert into table " + t.Name)
		}
	}

	before := t.RowCount
	for i, col := range t.Columns {
		col.Values = append(col.Values, values[i])
	}
	t.RowCount++

	if err := t.persist(); err != nil {
		t.truncate(before)
		return err
	}

	t.log.Debug("row inserted", "rows", t.RowCount)
	return nil
}

func reservedValue(action string) error {
	return dberror.Value("RESERVED_VALUE", schema.Erase,
		"!Failed to "+action+" because "+schema.Erase+" is a reserved value.")
}
