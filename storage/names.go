package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidName is returned for database and table names that would not
// map to exactly one entry inside their parent directory.
var ErrInvalidName = errors.New("invalid name")

// ValidateName rejects empty names, "." and "..", and names holding a path
// separator.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
