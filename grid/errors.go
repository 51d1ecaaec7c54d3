package grid

import "errors"

var (
	// ErrEmptyGrid indicates a requested grid with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: width and height must be at least one")
	// ErrGridTooLarge indicates a requested grid of more than MaxCells cells per layer.
	ErrGridTooLarge = errors.New("grid: too many cells")
)
