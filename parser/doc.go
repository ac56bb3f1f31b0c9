// Package parser turns the session's token stream into structured statement
// arguments.
//
// Input is a stream of whitespace separated tokens (Stream). Statements are
// recognized by the shape of their tokens rather than by a grammar: a
// statement ends with the token carrying ';', list elements end with ',', and
// an insert consumes exactly one token per column. Parse functions consume
// tokens in the same order the command is written and stop at the first
// malformed token.
//
// Every malformed statement yields a dberror.DBError of the Syntax category;
// the session treats it as terminal.
//
// Supported shapes (the verb itself is read by the executor):
//   - CREATE DATABASE d;  DROP DATABASE d;  USE d;
//   - CREATE TABLE t (a int, b varchar(10));
//   - DROP TABLE t;
//   - ALTER TABLE t ADD c float;
//   - insert into t values(1,"x");
//   - update t set b = "y" where a = 1;
//   - delete from t where a > 1;
//   - select * from t;
//   - select a, b from t where a != 1;
//   - select * from t1 x, t2 y where x.a = y.a;
//   - select * from t1 x inner join t2 y on x.a = y.a;
//   - select * from t1 x left outer join t2 y on x.a = y.a;
//
// Statements whose token count depends on the target table (insert) are
// parsed in two steps: the executor reads the head, resolves the table, then
// calls the value parser with the table's column count.
//
// Usage Example:
//
//	s := parser.NewStreamString("a, b from t where a != 1;")
//	stmt, err := parser.ParseSelect(s)
//	// stmt.Columns == []string{"a", "b"}
//	// stmt.Where.Column == "a"
package parser
