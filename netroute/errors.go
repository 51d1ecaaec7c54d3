package netroute

import "errors"

var (
	// ErrInvalidNet indicates a net with fewer than two pins.
	ErrInvalidNet = errors.New("netroute: net must have at least two pins")
	// ErrNilGrid indicates NewRouter was given a nil grid.
	ErrNilGrid = errors.New("netroute: grid is nil")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("netroute: workers must be at least one")
)
