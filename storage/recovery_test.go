package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverRemovesInterruptedRewrites(t *testing.T) {
	dir := t.TempDir()
	engine, err := NewEngine(dir)
	require.NoError(t, err)

	require.NoError(t, engine.WriteTable("t1", sampleColumns(), 2, 0))
	before, err := os.ReadFile(engine.TablePath("t1"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".t1.txt.123456"), []byte("1 5\na int\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("keep"), 0o644))

	report, err := engine.Recover()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Tables)
	assert.Equal(t, []string{".t1.txt.123456"}, report.TempFilesRemoved)

	assert.NoFileExists(t, filepath.Join(dir, ".t1.txt.123456"))
	assert.FileExists(t, filepath.Join(dir, "notes.md"))

	after, err := os.ReadFile(engine.TablePath("t1"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRecoverCleanDirectory(t *testing.T) {
	engine, err := NewEngine(t.TempDir())
	require.NoError(t, err)

	report, err := engine.Recover()
	require.NoError(t, err)
	assert.Zero(t, report.Tables)
	assert.Empty(t, report.TempFilesRemoved)
}
