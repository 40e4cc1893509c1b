package app

import "errors"

// Sentinel kinds for directory write errors.
var (
	ErrMissingID   = errors.New("missing id")
	ErrInvalidKind = errors.New("invalid candidate kind")
	ErrInvalidRole = errors.New("invalid profile role")
	ErrReadOnly    = errors.New("directory is read-only")
)
