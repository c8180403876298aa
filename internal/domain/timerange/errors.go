package timerange

import "errors"

// Sentinel kinds for this package.
var (
	ErrBadSpec = errors.New("bad time range spec")
)
