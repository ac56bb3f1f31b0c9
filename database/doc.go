// Package database holds tables in memory and keeps each one mirrored in its
// backing file.
//
// A Table is a list of columns that share a row count. Every mutation
// (alter, insert, update, delete) changes memory and then rewrites the whole
// backing file before returning, so the file always reflects the last
// completed operation. Delete is the only operation that removes rows: it
// tombstones matching rows with schema.Erase, rewrites the file without
// them, and reloads the table so row indices are dense again.
//
// A Database is the set of tables found in one directory. Insert, update,
// alter and drop table resolve names exactly; select, joins and delete
// resolve them case-insensitively. Options.FoldMutationNames folds every
// lookup.
//
// Usage:
//
//	db, err := database.Open("Databases/shop", "shop", database.Options{})
//	if err != nil {
//		return err
//	}
//	t, _ := db.CreateTable("Product", columns)
//	_ = t.Insert([]string{"1", "'Gizmo'", "19.99"})
//	_ = t.Select(os.Stdout)
package database
