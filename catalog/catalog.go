package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"flatdb/database"
	"flatdb/dberror"
	"flatdb/logging"
	"flatdb/storage"
)

// Catalog is the set of databases under a root directory. Each database is
// a subdirectory holding one file per table.
type Catalog struct {
	root string
	opts database.Options
	log  *slog.Logger
}

// New creates the root directory if needed and returns its catalog.
func New(root string, opts database.Options) (*Catalog, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create root %s: %w", root, err)
	}
	return &Catalog{
		root: root,
		opts: opts,
		log:  logging.WithComponent("catalog"),
	}, nil
}

// Root returns the root directory.
func (c *Catalog) Root() string {
	return c.root
}

// Path returns the directory of the named database. The name must pass
// storage.ValidateName.
func (c *Catalog) Path(name string) string {
	return filepath.Join(c.root, name)
}

// Exists reports whether the named database directory exists.
func (c *Catalog) Exists(name string) bool {
	if storage.ValidateName(name) != nil {
		return false
	}
	info, err := os.Stat(c.Path(name))
	return err == nil && info.IsDir()
}

// Databases lists database names in sorted order.
func (c *Catalog) Databases() ([]string, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", c.root, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CreateDatabase makes an empty database directory.
func (c *Catalog) CreateDatabase(name string) error {
	if err := checkName(name, "create database "+name); err != nil {
		return err
	}
	if c.Exists(name) {
		return dberror.Resolution("DATABASE_EXISTS", name,
			"!Failed to create database "+name+" because it already exists.")
	}
	if err := os.Mkdir(c.Path(name), 0o755); err != nil {
		return dberror.Wrap(err, "CREATE_FAILED", "CreateDatabase")
	}
	c.log.Debug("database created", "database", name)
	return nil
}

// DropDatabase removes a database directory with all its tables.
func (c *Catalog) DropDatabase(name string) error {
	if err := checkName(name, "delete "+name); err != nil {
		return err
	}
	if !c.Exists(name) {
		return dberror.Resolution("DATABASE_NOT_FOUND", name,
			"!Failed to delete "+name+" because it does not exist.")
	}
	if err := os.RemoveAll(c.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return dberror.Wrap(err, "REMOVE_FAILED", "DropDatabase")
	}
	c.log.Debug("database dropped", "database", name)
	return nil
}

// Open loads the named database from disk.
func (c *Catalog) Open(name string) (*database.Database, error) {
	if err := checkName(name, "use database "+name); err != nil {
		return nil, err
	}
	if !c.Exists(name) {
		return nil, dberror.Resolution("DATABASE_NOT_FOUND", name,
			"!Failed to use database "+name+" because it does not exist.")
	}
	return database.Open(c.Path(name), name, c.opts)
}

// checkName rejects names that would resolve outside the root.
func checkName(name, action string) error {
	if err := storage.ValidateName(name); err != nil {
		dbErr := dberror.Resolution("INVALID_NAME", name,
			"!Failed to "+action+" because the name is not valid.")
		dbErr.Cause = err
		return dbErr
	}
	return nil
}
