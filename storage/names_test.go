package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	for _, name := range []string{"t1", "Product", "db_1", ".hidden", "a.b"} {
		assert.NoError(t, ValidateName(name), name)
	}
	for _, name := range []string{"", ".", "..", "../x", "a/b", `a\b`, "/abs"} {
		assert.ErrorIs(t, ValidateName(name), ErrInvalidName, name)
	}
}

func TestEngineRejectsEscapingNames(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "db")
	require.NoError(t, os.Mkdir(dir, 0o755))
	engine, err := NewEngine(dir)
	require.NoError(t, err)

	assert.ErrorIs(t, engine.WriteTable("../x", sampleColumns(), 2, 0), ErrInvalidName)
	assert.NoFileExists(t, filepath.Join(parent, "x.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(parent, "keep.txt"), []byte("1 0\na int \n"), 0o644))
	assert.False(t, engine.TableExists("../keep"))
	assert.ErrorIs(t, engine.RemoveTable("../keep"), ErrInvalidName)
	assert.FileExists(t, filepath.Join(parent, "keep.txt"))

	_, err = engine.ReadTable("../keep")
	assert.ErrorIs(t, err, ErrInvalidName)
}
