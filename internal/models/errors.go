package models

import "errors"

var (
	// ErrInvalidPath is returned when the scan root is missing or is not a directory.
	ErrInvalidPath = errors.New("invalid path")

	// ErrIO is returned when the ignore file or a candidate file cannot be read.
	ErrIO = errors.New("io failure")
)
