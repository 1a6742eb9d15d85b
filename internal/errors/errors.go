// Package errors provides sentinel errors for the matcha CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrPermission indicates a filesystem path could not be written due to
	// insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrMalformedConfig indicates the global configuration file exists but
	// could not be parsed into the expected record.
	ErrMalformedConfig = errors.New("malformed configuration")

	// ErrNotFound indicates a template source, file, or directory was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing errors.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Path is the filesystem path the error relates to (optional).
	Path string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Path != "" {
		b.WriteString("  Path: ")
		b.WriteString(e.Path)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewPermissionError creates a permission denied error for the given path.
// The returned error matches ErrPermission via errors.Is.
func NewPermissionError(path string, cause error) error {
	return &DetailError{
		Type:    "permission denied",
		Message: fmt.Sprintf("you do not have permission to write to %q", path),
		Path:    path,
		Hint:    "check that you have write permissions for the path and re-run",
		Cause:   join(ErrPermission, cause),
	}
}

// NewMalformedConfigError creates a malformed configuration error for the
// given path. The returned error matches ErrMalformedConfig via errors.Is.
func NewMalformedConfigError(path string, cause error) error {
	return &DetailError{
		Type:    "malformed configuration",
		Message: fmt.Sprintf("the configuration file at %q could not be parsed", path),
		Path:    path,
		Hint:    "fix or remove the file; a removed file is recreated on next run",
		Cause:   join(ErrMalformedConfig, cause),
	}
}

// NewNotFoundError creates a not found error for the given path.
// The returned error matches ErrNotFound via errors.Is.
func NewNotFoundError(message, path string) error {
	return &DetailError{
		Type:    "not found",
		Message: message,
		Path:    path,
		Cause:   ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

func join(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}
