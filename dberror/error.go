// Package dberror defines the structured error returned by every table,
// relation and dispatch operation.
//
// The category decides how the session reacts:
//   - Syntax: a required keyword or punctuation token is missing or malformed.
//     The whole session ends.
//   - Resolution: a referenced database, table or column does not exist.
//     The message is printed and the session continues.
//   - Value: a value cannot be parsed as the number a comparison needs.
//     The message is printed and the session continues.
//   - System: the backing file could not be read or written. The session ends.
package dberror

import "errors"

// Category classifies an error by how the session must react to it.
type Category int

const (
	CategorySyntax Category = iota
	CategoryResolution
	CategoryValue
	CategorySystem
)

func (c Category) String() string {
	switch c {
	case CategorySyntax:
		return "syntax"
	case CategoryResolution:
		return "resolution"
	case CategoryValue:
		return "value"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// DBError is a structured engine error.
type DBError struct {
	// Code is a short identifier such as "MISSING_SEMICOLON" or "TABLE_NOT_FOUND".
	Code string

	Category Category

	// Message is what gets printed to the session output for non-terminal errors.
	Message string

	// Detail carries the offending token or name, for logs.
	Detail string

	// Operation is the engine operation that failed, e.g. "Insert", "InnerJoin".
	Operation string

	Cause error
}

func (e *DBError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *DBError) Unwrap() error {
	return e.Cause
}

// Terminal reports whether the error ends the enclosing session.
func (e *DBError) Terminal() bool {
	return e.Category == CategorySyntax || e.Category == CategorySystem
}

// WithOperation sets the operation if it is not already set.
func (e *DBError) WithOperation(op string) *DBError {
	if e.Operation == "" {
		e.Operation = op
	}
	return e
}

// New creates a DBError.
func New(category Category, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
	}
}

// Syntax reports a malformed or missing token.
func Syntax(code, token string) *DBError {
	return &DBError{
		Code:     code,
		Category: CategorySyntax,
		Message:  "unexpected token",
		Detail:   token,
	}
}

// Resolution reports a missing database, table or column. message is the
// user-facing line printed by the session.
func Resolution(code, name, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: CategoryResolution,
		Message:  message,
		Detail:   name,
	}
}

// Value reports a token that cannot be read as the required number.
func Value(code, token, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: CategoryValue,
		Message:  message,
		Detail:   token,
	}
}

// Wrap turns an I/O or decoding error into a system DBError. A DBError is
// returned as is, with operation filled in when missing.
func Wrap(err error, code, operation string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.WithOperation(operation)
	}

	return &DBError{
		Code:      code,
		Category:  CategorySystem,
		Message:   "storage failure",
		Operation: operation,
		Cause:     err,
	}
}

// IsTerminal reports whether err ends the session. Plain (non-DBError)
// errors are treated as system failures.
func IsTerminal(err error) bool {
	if err == nil {
		return false
	}
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Terminal()
	}
	return true
}

// CategoryOf returns the category of err, CategorySystem for foreign errors.
func CategoryOf(err error) Category {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Category
	}
	return CategorySystem
}
