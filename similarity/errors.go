package similarity

import "errors"

// ErrMalformedLine indicates a similarity-file row did not parse as the
// documented three-column "itemA<TAB>itemB<TAB>score" format.
var ErrMalformedLine = errors.New("similarity: malformed line")
