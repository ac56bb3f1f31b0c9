// Package storage provides the on-disk representation of tables.
//
// Every table is one plain text file inside its database directory. The file
// is a full snapshot of the table, rewritten after each mutation; there is no
// log and no partial update.
//
// Storage Format:
//
//	2 3
//	id int name varchar 10
//	1 "a"
//	2 "b"
//	3 "c"
//
// Line 1 holds the column count and the row count. Line 2 holds one
// descriptor per column: name and type, plus the declared size for char and
// varchar. Each following line is one row, one token per column, text tokens
// with their quote characters.
//
// Key Components:
//   - Decode / Encode: the codec over io.Reader / io.Writer
//   - Engine: file naming, listing, atomic rewrite and removal for one
//     database directory
//   - Engine.Recover: removes temp files of rewrites interrupted before
//     their rename
//
// Encode is the only place where tombstoned rows (schema.Erase) are
// physically dropped; the table engine reloads from the rewritten file
// afterwards so row indices match the compacted file.
package storage
