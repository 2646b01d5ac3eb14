package dataset

import "errors"

var (
	// ErrEmptyFile indicates the input has no header row
	ErrEmptyFile = errors.New("file has no header row")

	// ErrUnknownOverride indicates a column override names no column of the file
	ErrUnknownOverride = errors.New("override names an unknown column")
)
