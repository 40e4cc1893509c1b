package remote

import "errors"

// ErrUnavailable signals that remote scoring produced no usable result
// (timeout, HTTP error, malformed payload). Callers must treat it as
// "score locally", never as a fatal error.
var ErrUnavailable = errors.New("remote scorer unavailable")
