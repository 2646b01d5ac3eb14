package layout

import "errors"

// Layout-related errors
var (
	// Validation errors
	ErrEmptyGridName     = errors.New("grid name cannot be empty")
	ErrEmptyColumnID     = errors.New("column id cannot be empty")
	ErrDuplicateColumnID = errors.New("column id appears more than once")

	// Business logic errors
	ErrLayoutNotFound = errors.New("no saved layout for grid")
)
