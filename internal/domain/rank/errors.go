package rank

import "errors"

// Sentinel kinds for ranking contract violations. Both are fatal to
// the call and surfaced to the caller.
var (
	ErrInvalidLimit       = errors.New("invalid rank limit")
	ErrDuplicateCandidate = errors.New("duplicate candidate id")
)
