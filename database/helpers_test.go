package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flatdb/schema"
)

func openTestDB(t *testing.T, opts Options) *Database {
	t.Helper()
	db, err := Open(t.TempDir(), "test", opts)
	require.NoError(t, err)
	return db
}

func col(name string, typ schema.ColumnType, size int) *schema.Column {
	return schema.NewColumn(name, typ, size)
}

func createTable(t *testing.T, db *Database, name string, columns []*schema.Column, rows ...[]string) *Table {
	t.Helper()
	tbl, err := db.CreateTable(name, columns)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, tbl.Insert(r))
	}
	return tbl
}

func productTable(t *testing.T, db *Database) *Table {
	return createTable(t, db, "Product",
		[]*schema.Column{
			col("pid", schema.TypeInt, 0),
			col("name", schema.TypeVarchar, 20),
			col("price", schema.TypeFloat, 0),
		},
		[]string{"1", "'Gizmo'", "19.99"},
		[]string{"2", "'PowerGizmo'", "29.99"},
		[]string{"3", "'SingleTouch'", "149.99"},
		[]string{"4", "'MultiTouch'", "199.99"},
		[]string{"5", "'SuperGizmo'", "49.99"},
	)
}

// requireConsistent checks that every column holds exactly RowCount values.
func requireConsistent(t *testing.T, tbl *Table) {
	t.Helper()
	for _, c := range tbl.Columns {
		require.Len(t, c.Values, tbl.RowCount, "column %s", c.Name)
	}
}
