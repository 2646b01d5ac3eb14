package grid

import "errors"

// Reorder errors. None of them are fatal: every failure leaves the column set
// and the order cache exactly as they were.
var (
	// ErrInvalidArgument is returned for out-of-range slots or indices. It is logged.
	ErrInvalidArgument = errors.New("invalid column position")

	// ErrNoVisibleTarget is returned when only invisible columns lie between
	// origin and target, so the move would not be visible. Not logged as an error.
	ErrNoVisibleTarget = errors.New("no visible column between origin and target")

	// ErrNotMovable is returned when the column's resolved movable flag is false.
	ErrNotMovable = errors.New("column is not movable")
)

// Column set construction errors
var (
	ErrEmptyColumnID   = errors.New("column id cannot be empty")
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrFixedNotPrefix  = errors.New("fixed columns must precede all data columns")
	ErrColumnNotFound  = errors.New("column not found")
)
