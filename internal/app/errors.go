package app

import "errors"

// Sentinel kinds for service operations.
var (
	// ErrNoSelection marks an export requested with zero countries; the
	// API treats it as a no-op rather than a failure.
	ErrNoSelection = errors.New("no countries selected")
)
