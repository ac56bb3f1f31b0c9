// Package executor runs a command session: it reads verbs from a
// parser.Stream, routes each one to its parser and to the catalog, database
// or table operation, and prints the outcome.
//
// Outside a database only CREATE DATABASE, DROP DATABASE, USE, .EXIT and
// "--" comment lines make sense; table commands need a database chosen with
// USE first.
//
// Error handling follows the dberror categories:
//   - resolution and value failures print their message and the session
//     continues with the next statement;
//   - syntax failures, unknown verbs and storage failures print
//     "!Unknown Command." and end the session.
//
// Usage Example:
//
//	cat, _ := catalog.New("Databases", database.Options{})
//	session := executor.NewSession(cat, os.Stdout)
//	if err := session.Run(parser.NewStream(os.Stdin)); err != nil {
//		log.Println(err)
//	}
package executor
