package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flatdb/schema"
)

// TableExtension is the suffix of every backing file.
const TableExtension = ".txt"

// Engine handles the backing files of one database directory.
//
// Each table is one text file <dir>/<table>.txt in the format described by
// Decode. Files are rewritten whole after every mutation; the file is always
// a snapshot of the last successful in-memory state.
type Engine struct {
	dataDir string
}

// NewEngine creates a storage engine over an existing database directory.
func NewEngine(dataDir string) (*Engine, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dataDir)
	}
	return &Engine{dataDir: dataDir}, nil
}

// Dir returns the database directory.
func (e *Engine) Dir() string {
	return e.dataDir
}

// TablePath returns the file path for a table's data
func (e *Engine) TablePath(tableName string) string {
	return filepath.Join(e.dataDir, tableName+TableExtension)
}

// TableExists reports whether the table's backing file is present.
func (e *Engine) TableExists(tableName string) bool {
	if ValidateName(tableName) != nil {
		return false
	}
	_, err := os.Stat(e.TablePath(tableName))
	return err == nil
}

// ListTables returns the table names found in the directory, sorted.
func (e *Engine) ListTables() ([]string, error) {
	entries, err := os.ReadDir(e.dataDir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != TableExtension {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), TableExtension))
	}
	sort.Strings(names)
	return names, nil
}

// ReadTable loads a table file. A missing file yields an empty table.
func (e *Engine) ReadTable(tableName string) (*TableData, error) {
	if err := ValidateName(tableName); err != nil {
		return nil, err
	}
	return ReadFile(e.TablePath(tableName))
}

// WriteTable rewrites a table file from its columns.
func (e *Engine) WriteTable(tableName string, columns []*schema.Column, rowCount, pending int) error {
	if err := ValidateName(tableName); err != nil {
		return err
	}
	return WriteFile(e.TablePath(tableName), columns, rowCount, pending)
}

// RemoveTable deletes a table file.
func (e *Engine) RemoveTable(tableName string) error {
	if err := ValidateName(tableName); err != nil {
		return err
	}
	err := os.Remove(e.TablePath(tableName))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrTableNotFound
	}
	return err
}

// ReadFile decodes the table file at path. A missing file yields an empty
// table.
func ReadFile(path string) (*TableData, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &TableData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return data, nil
}

// WriteFile encodes columns into a temporary file next to path and renames
// it over path, so a failed write never leaves a truncated table behind.
func WriteFile(path string, columns []*schema.Column, rowCount, pending int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, columns, rowCount, pending); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("File.Sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("File.Close: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("os.Chmod: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}
