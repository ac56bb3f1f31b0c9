package dberror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	assert.True(t, Syntax("MISSING_SEMICOLON", "x").Terminal())
	assert.False(t, Resolution("TABLE_NOT_FOUND", "t", "msg").Terminal())
	assert.False(t, Value("NOT_A_NUMBER", "x", "msg").Terminal())
	assert.True(t, Wrap(errors.New("disk"), "WRITE_FAILED", "WriteTable").Terminal())
}

func TestWrapKeepsDBError(t *testing.T) {
	orig := Resolution("TABLE_NOT_FOUND", "t", "msg")
	wrapped := Wrap(orig, "WRITE_FAILED", "Insert")

	assert.Same(t, orig, wrapped)
	assert.Equal(t, "Insert", wrapped.Operation)
	assert.Equal(t, CategoryResolution, wrapped.Category)
	assert.Nil(t, Wrap(nil, "X", "Y"))
}

func TestUnwrapAndCategory(t *testing.T) {
	cause := errors.New("no space left on device")
	err := fmt.Errorf("persist: %w", Wrap(cause, "WRITE_FAILED", "WriteTable"))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CategorySystem, CategoryOf(err))
	assert.True(t, IsTerminal(err))

	var dbErr *DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "WRITE_FAILED", dbErr.Code)
	assert.Contains(t, dbErr.Error(), "WriteTable: storage failure")
}

func TestIsTerminalForeignError(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.True(t, IsTerminal(errors.New("boom")))
	assert.Equal(t, CategorySystem, CategoryOf(errors.New("boom")))
	assert.Equal(t, CategoryValue, CategoryOf(Value("X", "a", "m")))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "syntax", CategorySyntax.String())
	assert.Equal(t, "resolution", CategoryResolution.String())
	assert.Equal(t, "value", CategoryValue.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "unknown", Category(42).String())
}
