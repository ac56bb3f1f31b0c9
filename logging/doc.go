// Package logging provides the process-wide structured logger.
//
// It wraps log/slog with a small configuration surface (level, text or json
// format, optional file) and helpers that attach the usual context
// attributes: session, table, component.
//
// Usage:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelInfo}); err != nil {
//		log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logging.WithTable("users").Debug("persisted", "rows", 3)
package logging
