package numeric

import "errors"

var (
	// ErrLengthMismatch indicates two vectors passed to a primitive have
	// different lengths.
	ErrLengthMismatch = errors.New("numeric: vector length mismatch")

	// ErrInvalidDimensions indicates a requested matrix/vector size is <= 0.
	ErrInvalidDimensions = errors.New("numeric: dimensions must be > 0")

	// ErrNonPositiveStdDev indicates a Gaussian initializer was asked for a
	// non-positive standard deviation.
	ErrNonPositiveStdDev = errors.New("numeric: standard deviation must be > 0")
)
