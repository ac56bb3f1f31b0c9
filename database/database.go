package database

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"flatdb/dberror"
	"flatdb/logging"
	"flatdb/schema"
	"flatdb/storage"
)

// Options tune name resolution.
type Options struct {
	// FoldMutationNames makes insert, update, alter and drop table resolve
	// table names case-insensitively, like select and delete always do.
	FoldMutationNames bool
}

// Database is the set of tables stored in one directory.
type Database struct {
	Name string

	engine *storage.Engine
	tables map[string]*Table
	opts   Options
	log    *slog.Logger
}

// Open loads every table file found in dir, after discarding temporary files
// of rewrites that never completed.
func Open(dir, name string, opts Options) (*Database, error) {
	engine, err := storage.NewEngine(dir)
	if err != nil {
		return nil, dberror.Wrap(err, "OPEN_FAILED", "Open")
	}

	db := &Database{
		Name:   name,
		engine: engine,
		tables: make(map[string]*Table),
		opts:   opts,
		log:    logging.WithComponent("database").With("database", name),
	}

	report, err := engine.Recover()
	if err != nil {
		return nil, dberror.Wrap(err, "OPEN_FAILED", "Recover")
	}
	if len(report.TempFilesRemoved) > 0 {
		db.log.Info("removed interrupted rewrites", "files", report.TempFilesRemoved)
	}

	names, err := engine.ListTables()
	if err != nil {
		return nil, dberror.Wrap(err, "OPEN_FAILED", "ListTables")
	}
	for _, n := range names {
		t, err := LoadTable(engine, n)
		if err != nil {
			return nil, err
		}
		db.tables[n] = t
	}

	db.log.Debug("database opened", "tables", len(names))
	return db, nil
}

// Dir returns the directory holding the table files.
func (db *Database) Dir() string {
	return db.engine.Dir()
}

// Table resolves a name for insert, update, alter and drop table: exact
// match unless Options.FoldMutationNames is set.
func (db *Database) Table(name string) (*Table, bool) {
	if db.opts.FoldMutationNames {
		return db.Lookup(name)
	}
	t, ok := db.tables[name]
	return t, ok
}

// Lookup resolves a name case-insensitively. An exact match wins; otherwise
// the first folded match in name order.
func (db *Database) Lookup(name string) (*Table, bool) {
	if t, ok := db.tables[name]; ok {
		return t, true
	}
	lower := strings.ToLower(name)
	for _, n := range db.names() {
		if t := db.tables[n]; t.LowerName() == lower {
			return t, true
		}
	}
	return nil, false
}

// Tables returns the tables sorted by name.
func (db *Database) Tables() []*Table {
	names := db.names()
	out := make([]*Table, len(names))
	for i, n := range names {
		out[i] = db.tables[n]
	}
	return out
}

// TableExists reports whether a table of that exact name is loaded or has a
// backing file.
func (db *Database) TableExists(name string) bool {
	if _, ok := db.tables[name]; ok {
		return true
	}
	return db.engine.TableExists(name)
}

// CreateTable creates a table with the given columns and writes its empty
// backing file.
func (db *Database) CreateTable(name string, columns []*schema.Column) (*Table, error) {
	if err := CheckTableName(name, "create table "+name); err != nil {
		return nil, err
	}
	if db.TableExists(name) {
		return nil, dberror.Resolution("TABLE_EXISTS", name,
			"!Failed to create table "+name+" because it already exists.")
	}

	t := newTable(db.engine, name, columns)
	if err := t.persist(); err != nil {
		return nil, err
	}
	db.tables[name] = t

	db.log.Debug("table created", "table", name, "columns", len(columns))
	return t, nil
}

// DropTable removes a table and its backing file.
func (db *Database) DropTable(name string) error {
	if err := CheckTableName(name, "delete "+name); err != nil {
		return err
	}
	t, ok := db.Table(name)
	if !ok {
		return dberror.Resolution("TABLE_NOT_FOUND", name,
			"!Failed to delete "+name+" because it does not exist.")
	}

	if err := db.engine.RemoveTable(t.Name); err != nil && !errors.Is(err, storage.ErrTableNotFound) {
		return dberror.Wrap(err, "REMOVE_FAILED", "DropTable")
	}
	delete(db.tables, t.Name)

	db.log.Debug("table dropped", "table", t.Name)
	return nil
}

// CheckTableName rejects a table name that would resolve outside the
// database directory. action completes the "!Failed to ..." message.
func CheckTableName(name, action string) error {
	if err := storage.ValidateName(name); err != nil {
		dbErr := dberror.Resolution("INVALID_NAME", name,
			"!Failed to "+action+" because the name is not valid.")
		dbErr.Cause = err
		return dbErr
	}
	return nil
}

func (db *Database) names() []string {
	names := make([]string, 0, len(db.tables))
	for n := range db.tables {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
