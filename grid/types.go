package grid

import "fmt"

// Layer identifies a physical routing plane.
type Layer int

const (
	// Layer0 is the bottom routing plane.
	Layer0 Layer = iota
	// Layer1 is the top routing plane.
	Layer1
)

// NumLayers is the number of routing planes in every Grid.
const NumLayers = 2

// Valid reports whether l names one of the two routing planes.
func (l Layer) Valid() bool {
	return l >= Layer0 && l < NumLayers
}

// Cell represents a single grid position.
type Cell struct {
	Layer Layer // Routing plane
	X, Y  int   // Coordinates within the plane
}

// At is shorthand for Cell{Layer: l, X: x, Y: y}.
func At(l Layer, x, y int) Cell {
	return Cell{Layer: l, X: x, Y: y}
}

// String renders c as "(layer,x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Layer, c.X, c.Y)
}

// Reader is the read-only view of a grid used by searches.
type Reader interface {
	Width() int
	Height() int
	InBounds(c Cell) bool
	IsPassable(c Cell) bool
}

// state of a single cell.
type state uint8

const (
	free state = iota
	obstacle
)
