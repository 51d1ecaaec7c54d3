package wavefront

import "errors"

// Sentinel errors returned by Expand, Backtrace and Route.
var (
	// ErrNoPath indicates the target cannot be reached from the source.
	ErrNoPath = errors.New("wavefront: no path between source and target")

	// ErrOutOfBounds indicates a source or target cell outside the grid.
	ErrOutOfBounds = errors.New("wavefront: cell out of bounds")

	// ErrBadPenalty indicates a negative or NaN bend/via penalty.
	ErrBadPenalty = errors.New("wavefront: penalties must be non-negative numbers")

	// ErrUnknownFrontier indicates an unrecognised Frontier value.
	ErrUnknownFrontier = errors.New("wavefront: unknown frontier policy")

	// ErrNilGrid indicates a nil grid.Reader was supplied.
	ErrNilGrid = errors.New("wavefront: grid is nil")

	// ErrNilField indicates a nil *Field was passed to Backtrace.
	ErrNilField = errors.New("wavefront: field is nil")
)
