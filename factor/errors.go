package factor

import "errors"

// ErrInvalidDimensions indicates a requested store shape has a non-positive
// dimension.
var ErrInvalidDimensions = errors.New("factor: dimensions must be > 0")
