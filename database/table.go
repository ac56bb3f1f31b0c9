package database

import (
	"log/slog"
	"strings"

	"flatdb/dberror"
	"flatdb/logging"
	"flatdb/schema"
	"flatdb/storage"
)

// Table is one relation held in memory as columns sharing a row count.
//
// Every mutation runs in memory first and then rewrites the backing file
// before returning. For every column len(Values) == RowCount whenever no
// operation is in flight.
type Table struct {
	Name     string
	Columns  []*schema.Column
	RowCount int

	// PendingDeletes counts rows tombstoned in memory but still present in
	// the backing file. It is non-zero only inside Delete.
	PendingDeletes int

	engine *storage.Engine
	log    *slog.Logger
}

// LoadTable builds a table from its backing file. A missing file gives an
// empty table whose schema is filled in by CREATE TABLE.
func LoadTable(engine *storage.Engine, name string) (*Table, error) {
	t := newTable(engine, name, nil)
	if err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

func newTable(engine *storage.Engine, name string, columns []*schema.Column) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
		engine:  engine,
		log:     logging.WithTable(name),
	}
}

// LowerName is the name used by case-insensitive lookups.
func (t *Table) LowerName() string {
	return strings.ToLower(t.Name)
}

// Path returns the backing file path.
func (t *Table) Path() string {
	return t.engine.TablePath(t.Name)
}

// Column returns the column named name; the last one when names repeat.
func (t *Table) Column(name string) (*schema.Column, bool) {
	idx := schema.IndexOf(t.Columns, name)
	if idx < 0 {
		return nil, false
	}
	return t.Columns[idx], true
}

// persist rewrites the backing file from memory. Rows tombstoned in any
// column are dropped from the file here and only here.
func (t *Table) persist() error {
	if err := t.engine.WriteTable(t.Name, t.Columns, t.RowCount, t.PendingDeletes); err != nil {
		return dberror.Wrap(err, "WRITE_FAILED", "WriteTable")
	}
	t.log.Debug("table persisted", "rows", t.RowCount-t.PendingDeletes, "columns", len(t.Columns))
	return nil
}

// reload replaces the in-memory columns with a fresh copy decoded from the
// backing file.
func (t *Table) reload() error {
	data, err := t.engine.ReadTable(t.Name)
	if err != nil {
		return dberror.Wrap(err, "READ_FAILED", "ReadTable")
	}
	t.Columns = data.Columns
	t.RowCount = data.RowCount
	t.PendingDeletes = 0
	return nil
}

func (t *Table) cloneColumns() []*schema.Column {
	cols := make([]*schema.Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c.Clone()
	}
	return cols
}

// truncate drops values past rowCount in every column.
func (t *Table) truncate(rowCount int) {
	for _, c := range t.Columns {
		if len(c.Values) > rowCount {
			c.Values = c.Values[:rowCount]
		}
	}
	t.RowCount = rowCount
}
