package prefs

import "errors"

var (
	// ErrEmptyID indicates an empty user or item identifier was supplied.
	ErrEmptyID = errors.New("prefs: identifier is empty")

	// ErrUnknownUser indicates a userId/user lookup referenced an id/string
	// not present in the index.
	ErrUnknownUser = errors.New("prefs: unknown user")

	// ErrUnknownItem indicates an itemId/item lookup referenced an id/string
	// not present in the index.
	ErrUnknownItem = errors.New("prefs: unknown item")

	// ErrMalformedLine indicates a preference-file row did not parse as
	// "user<TAB>item".
	ErrMalformedLine = errors.New("prefs: malformed preference line")
)

// NotID is returned by ToDenseID-style lookups for an unknown string,
// mirroring gorse's base.NotId sentinel.
const NotID = -1
