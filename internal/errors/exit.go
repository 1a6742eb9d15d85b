package errors

import "errors"

// Exit codes returned by the matcha binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitPermissionDenied indicates a destination or configuration path was
	// not writable.
	ExitPermissionDenied = 2

	// ExitMalformedConfig indicates the global configuration file could not
	// be parsed.
	ExitMalformedConfig = 3

	// ExitNotFound indicates a template source or file was not found.
	ExitNotFound = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrMalformedConfig):
		return ExitMalformedConfig
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
