package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest       = errors.New("bad request")
	ErrMissingProfileID = errors.New("missing profile_id")
	ErrMissingViewerID  = errors.New("missing viewer_id")
	ErrMissingTargetID  = errors.New("missing target_id")
)
