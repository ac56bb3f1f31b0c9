package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RecoveryReport describes what Recover cleaned up.
type RecoveryReport struct {
	// Tables is the number of table files found.
	Tables int
	// TempFilesRemoved lists leftovers of rewrites that never reached the
	// rename, by base name.
	TempFilesRemoved []string
}

// Recover removes temporary files left behind by an interrupted WriteFile.
// The backing file of such a table still holds its last completed rewrite,
// so dropping the temp file is all the recovery a table needs.
func (e *Engine) Recover() (*RecoveryReport, error) {
	entries, err := os.ReadDir(e.dataDir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir: %w", err)
	}

	report := &RecoveryReport{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, TableExtension) && !isTempName(name) {
			report.Tables++
			continue
		}
		if !isTempName(name) {
			continue
		}
		if err := os.Remove(filepath.Join(e.dataDir, name)); err != nil {
			return nil, fmt.Errorf("remove %s: %w", name, err)
		}
		report.TempFilesRemoved = append(report.TempFilesRemoved, name)
	}
	sort.Strings(report.TempFilesRemoved)
	return report, nil
}

// isTempName matches the names WriteFile gives its temporary files:
// ".<table>.txt.<random>".
func isTempName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.Contains(name, TableExtension+".")
}
