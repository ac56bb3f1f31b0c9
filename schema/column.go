package schema

import "fmt"

// Column is one attribute of a table: its declaration plus the row values in
// row order. Values are raw tokens; text values keep their quotes.
type Column struct {
	Name   string
	Type   ColumnType
	Size   int
	Values []string
}

// NewColumn creates an empty column. Size is kept only for text types.
func NewColumn(name string, typ ColumnType, size int) *Column {
	if !typ.IsText() {
		size = 0
	}
	return &Column{Name: name, Type: typ, Size: size}
}

// Descriptor renders the column for a result header: "name type" or
// "name type(size)".
func (c *Column) Descriptor() string {
	if c.Type.IsText() {
		return fmt.Sprintf("%s %s(%d)", c.Name, c.Type, c.Size)
	}
	return fmt.Sprintf("%s %s", c.Name, c.Type)
}

// Display returns the value at row i as printed in results.
func (c *Column) Display(i int) string {
	v := c.Values[i]
	if v == Null {
		return ""
	}
	if c.Type.IsText() {
		return StripQuotes(v)
	}
	return v
}

// Clone copies the column, values included.
func (c *Column) Clone() *Column {
	values := make([]string, len(c.Values))
	copy(values, c.Values)
	return &Column{Name: c.Name, Type: c.Type, Size: c.Size, Values: values}
}

// IndexOf returns the position of the column named name, or -1. When several
// columns share a name the last one wins.
func IndexOf(columns []*Column, name string) int {
	idx := -1
	for i, c := range columns {
		if c.Name == name {
			idx = i
		}
	}
	return idx
}
