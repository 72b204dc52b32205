package neighbor

import "errors"

// ErrMalformedLine indicates a neighbor-file row did not parse as the
// documented three-column "item<TAB>neighbor<TAB>weight" format.
var ErrMalformedLine = errors.New("neighbor: malformed line")

// ErrNegativeWeight indicates a neighbor weight was negative; weights are
// treated as non-negative affinities.
var ErrNegativeWeight = errors.New("neighbor: negative weight")
