// Package clierr defines structured error types for CLI commands.
// Errors carry a machine-readable code and a human-readable message.
package clierr

import "fmt"

// Error code constants — uppercase, underscore-separated, stable across
// minor versions.
const (
	NoDirectories = "NO_DIRECTORIES"
	InvalidInput  = "INVALID_INPUT"
	InternalError = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}
