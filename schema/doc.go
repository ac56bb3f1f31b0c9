// Package schema provides the column model shared by the storage codec and
// the table engine.
//
// A table is a sequence of Columns. Each Column carries its declaration
// (name, type, advisory size) and its values, one raw token per row.
//
// Supported Column Types:
//   - TypeInt: integer tokens
//   - TypeFloat: floating point tokens
//   - TypeChar: fixed-length text, declared as char(n)
//   - TypeVarchar: variable-length text, declared as varchar(n)
//
// The size of text types is advisory and never enforced on write. Text
// tokens keep their surrounding quote characters; Display strips exactly one
// leading and one trailing character.
//
// Two tokens are reserved:
//   - Erase ("ERASE") tombstones a row until the next compaction
//   - Null ("NULL") fills a column added after rows already existed
//
// Usage Example:
//
//	typ, size, err := schema.ParseType("varchar(10)")
//	if err != nil {
//		return err
//	}
//	col := schema.NewColumn("name", typ, size)
//	col.Values = append(col.Values, `"Alice"`)
//	fmt.Println(col.Descriptor()) // name varchar(10)
//	fmt.Println(col.Display(0))   // Alice
package schema
