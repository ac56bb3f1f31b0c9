package database

import (
	"flatdb/parser"
	"flatdb/schema"
)

// Update sets SetColumn to SetValue on every row whose WhereColumn equals
// WhereValue textually, then persists whether or not anything matched.
// Tombstoned rows are not excluded from the scan. The count is one per
// (row, set column) pair written.
func (t *Table) Update(clause *parser.UpdateClause) (int, error) {
	if clause.SetValue == schema.Erase {
		return 0, reservedValue("update table " + t.Name)
	}

	type undo struct {
		col, row int
		old      string
	}
	var undos []undo

	count := 0
	for _, where := range t.Columns {
		if where.Name != clause.WhereColumn {
			continue
		}
		for row, v := range where.Values {
			if v != clause.WhereValue {
				continue
			}
			for ci, set := range t.Columns {
				if set.Name != clause.SetColumn {
					continue
				}
				undos = append(undos, undo{col: ci, row: row, old: set.Values[row]})
				set.Values[row] = clause.SetValue
				count++
			}
		}
	}

	if err := t.persist(); err != nil {
		for i := len(undos) - 1; i >= 0; i-- {
			u := undos[i]
			t.Columns[u.col].Values[u.row] = u.old
		}
		return 0, err
	}

	t.log.Debug("rows updated", "count", count, "column", clause.SetColumn)
	return count, nil
}
