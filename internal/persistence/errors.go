package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested slot has never been written.
	ErrNotFound = errors.New("persistence: not found")
)
