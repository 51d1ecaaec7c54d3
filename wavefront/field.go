package wavefront

import (
	"math"

	"github.com/katalvlaran/leeroute/grid"
)

// Field is the result of one expansion: the best known cost of every cell
// and the direction of the move that produced it.
// Cells never reached keep cost +Inf and direction None.
type Field struct {
	width, height int
	cost          [grid.NumLayers][]float64
	dir           [grid.NumLayers][]Direction
	settled       int
}

func newField(width, height int) *Field {
	f := &Field{width: width, height: height}
	inf := math.Inf(1)
	for l := 0; l < grid.NumLayers; l++ {
		f.cost[l] = make([]float64, width*height)
		f.dir[l] = make([]Direction, width*height)
		for i := range f.cost[l] {
			f.cost[l][i] = inf
			f.dir[l][i] = None
		}
	}

	return f
}

// Cost returns the recorded cost of c, or +Inf for unreached or off-grid cells.
func (f *Field) Cost(c grid.Cell) float64 {
	if !f.contains(c) {
		return math.Inf(1)
	}
	return f.cost[c.Layer][f.offset(c)]
}

// Direction returns the move that produced c's cost, or None.
func (f *Field) Direction(c grid.Cell) Direction {
	if !f.contains(c) {
		return None
	}
	return f.dir[c.Layer][f.offset(c)]
}

// Reached reports whether c has a finite cost.
func (f *Field) Reached(c grid.Cell) bool {
	return !math.IsInf(f.Cost(c), 1)
}

// Settled returns how many distinct cells were processed before the
// expansion stopped.
func (f *Field) Settled() int { return f.settled }

func (f *Field) set(c grid.Cell, cost float64, d Direction) {
	i := f.offset(c)
	f.cost[c.Layer][i] = cost
	f.dir[c.Layer][i] = d
}

func (f *Field) contains(c grid.Cell) bool {
	return c.Layer.Valid() && c.X >= 0 && c.X < f.width && c.Y >= 0 && c.Y < f.height
}

// offset is the row-major index of c within its layer.
func (f *Field) offset(c grid.Cell) int {
	return c.Y*f.width + c.X
}

// index is a dense index over both layers.
func (f *Field) index(c grid.Cell) int {
	return int(c.Layer)*f.width*f.height + f.offset(c)
}

func (f *Field) size() int {
	return grid.NumLayers * f.width * f.height
}
