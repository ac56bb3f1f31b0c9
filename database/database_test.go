package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/dberror"
	"flatdb/schema"
)

func TestOpenLoadsExistingTables(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tbl_1.txt"),
		[]byte("2 2\na1 int a2 varchar 20 \n1 'x' \n2 'y' \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	db, err := Open(dir, "db_1", Options{})
	require.NoError(t, err)
	require.Len(t, db.Tables(), 1)

	tbl, ok := db.Table("tbl_1")
	require.True(t, ok)
	assert.Equal(t, 2, tbl.RowCount)
	assert.Equal(t, schema.TypeVarchar, tbl.Columns[1].Type)
	assert.Equal(t, 20, tbl.Columns[1].Size)
}

func TestOpenRejectsCorruptTable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("2 1\na1 int\n"), 0o644))

	_, err := Open(dir, "db_1", Options{})
	require.Error(t, err)
	assert.True(t, dberror.IsTerminal(err))
}

func TestNameResolution(t *testing.T) {
	db := openTestDB(t, Options{})
	productTable(t, db)

	_, ok := db.Table("Product")
	assert.True(t, ok)
	_, ok = db.Table("product")
	assert.False(t, ok, "mutations resolve names exactly")

	tbl, ok := db.Lookup("PRODUCT")
	require.True(t, ok)
	assert.Equal(t, "Product", tbl.Name)

	folded := openTestDB(t, Options{FoldMutationNames: true})
	productTable(t, folded)
	_, ok = folded.Table("product")
	assert.True(t, ok)
}

func TestCreateAndDropTable(t *testing.T) {
	db := openTestDB(t, Options{})
	tbl := createTable(t, db, "tbl_1", []*schema.Column{col("a1", schema.TypeInt, 0)})
	assert.FileExists(t, tbl.Path())

	_, err := db.CreateTable("tbl_1", nil)
	require.Error(t, err)
	assert.Equal(t, dberror.CategoryResolution, dberror.CategoryOf(err))

	require.NoError(t, db.DropTable("tbl_1"))
	assert.NoFileExists(t, tbl.Path())
	assert.False(t, db.TableExists("tbl_1"))

	err = db.DropTable("tbl_1")
	require.Error(t, err)
	assert.Equal(t, dberror.CategoryResolution, dberror.CategoryOf(err))
}

func TestCreateEmptyTable(t *testing.T) {
	db := openTestDB(t, Options{})
	tbl := createTable(t, db, "blank", nil)

	raw, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, "0 0\n\n", string(raw))
}

func TestOpenDiscardsInterruptedRewrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "t.txt"), []byte("1 1\na int \n7 \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".t.txt.42"), []byte("1 2\na int \n7 \n"), 0o600))

	db, err := Open(dir, "db_1", Options{})
	require.NoError(t, err)
	tbl, ok := db.Table("t")
	require.True(t, ok)
	assert.Equal(t, 1, tbl.RowCount)
	assert.NoFileExists(t, filepath.Join(dir, ".t.txt.42"))
}

func TestTableNamesStayInsideDirectory(t *testing.T) {
	db := openTestDB(t, Options{})
	parent := filepath.Dir(db.Dir())

	for _, name := range []string{"../x", "..", ".", "a/b", ""} {
		_, err := db.CreateTable(name, []*schema.Column{col("a", schema.TypeInt, 0)})
		require.Error(t, err, name)
		assert.Equal(t, dberror.CategoryResolution, dberror.CategoryOf(err), name)
	}
	assert.NoFileExists(t, filepath.Join(parent, "x.txt"))

	require.NoError(t, os.WriteFile(filepath.Join(parent, "keep.txt"), []byte("1 0\na int \n"), 0o644))
	err := db.DropTable("../keep")
	require.Error(t, err)
	assert.Equal(t, dberror.CategoryResolution, dberror.CategoryOf(err))
	assert.FileExists(t, filepath.Join(parent, "keep.txt"))
}
