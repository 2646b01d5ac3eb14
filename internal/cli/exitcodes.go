package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing arguments or arguments that are not numbers.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Missing data file, unknown column, no saved layout.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable or malformed data files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Slots out of range, moves onto hidden or fixed columns,
	// columns that are not movable.
	ExitValidation = 5
)

// CodedError carries the process exit code of a failed command. The message
// has already been reported through an OutputFormatter.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return "exit status"
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the carried
// code for a CodedError, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
