package models

import "errors"

// Storage-level errors shared by the repository and service layers
var (
	// ErrLayoutNotFound indicates no order has been saved for a grid
	ErrLayoutNotFound = errors.New("layout not found")
)
