package provider

import "errors"

// Sentinel kinds for provider errors.
var (
	ErrRequestFailed = errors.New("provider request failed")
	ErrBadStatus     = errors.New("provider returned non-success status")
)
