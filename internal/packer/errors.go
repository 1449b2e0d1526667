package packer

import "errors"

var (
	// ErrInvalidWeight is returned when an article weight is negative, NaN, or infinite.
	ErrInvalidWeight = errors.New("article weight must be a non-negative finite number")
	// ErrInvalidBoxCount is returned when the requested box count is not positive.
	ErrInvalidBoxCount = errors.New("box count must be a positive integer")
	// ErrEmptyInput is returned when no articles are supplied.
	ErrEmptyInput = errors.New("at least one article is required")
)
