package repository

import "errors"

// Sentinel kinds for source errors.
var (
	ErrNotFound = errors.New("profile not found")
)
