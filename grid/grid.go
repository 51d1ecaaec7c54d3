package grid

import (
	"fmt"
	"sync"
)

// MaxCells bounds width×height of a single layer.
const MaxCells = 1 << 26

// Grid is a two-layer rectangular obstacle map.
// cells[l][y*width+x] holds the state of (l,x,y).
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	cells  [NumLayers][]state
}

// New constructs an obstacle-free Grid of the given dimensions.
// Returns ErrEmptyGrid if width or height is below one and ErrGridTooLarge
// if width×height exceeds MaxCells.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %d×%d exceeds %d", ErrGridTooLarge, width, height, MaxCells)
	}
	g := &Grid{width: width, height: height}
	for l := range g.cells {
		g.cells[l] = make([]state, width*height)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries, layer included.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Layer.Valid() && c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// MarkObstacle blocks (layer,x,y). Out-of-bounds coordinates are ignored.
func (g *Grid) MarkObstacle(layer Layer, x, y int) {
	c := At(layer, x, y)
	if !g.InBounds(c) {
		return
	}
	g.mu.Lock()
	g.cells[c.Layer][g.index(c)] = obstacle
	g.mu.Unlock()
}

// IsPassable reports whether c is in bounds and free.
func (g *Grid) IsPassable(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.passable(c)
}

// IsObstacle reports whether c is in bounds and marked as an obstacle.
func (g *Grid) IsObstacle(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[c.Layer][g.index(c)] == obstacle
}

// ObstacleCount returns the number of obstacle cells over both layers.
// Complexity: O(W×H).
func (g *Grid) ObstacleCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for l := range g.cells {
		for _, s := range g.cells[l] {
			if s == obstacle {
				n++
			}
		}
	}

	return n
}

// Clamp moves c into the grid: x and y are clamped to [0,W-1] and [0,H-1],
// the layer to [Layer0, Layer1].
func (g *Grid) Clamp(c Cell) Cell {
	return Cell{
		Layer: Layer(clamp(int(c.Layer), 0, NumLayers-1)),
		X:     clamp(c.X, 0, g.width-1),
		Y:     clamp(c.Y, 0, g.height-1),
	}
}

// View calls fn with an unlocked Reader while holding the read lock.
// Obstacle writes block until fn returns. fn must not call MarkObstacle.
func (g *Grid) View(fn func(r Reader) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(view{g})
}

// passable is IsPassable without locking.
func (g *Grid) passable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Layer][g.index(c)] == free
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

// view is the lock-free Reader handed out by View.
type view struct{ g *Grid }

func (v view) Width() int             { return v.g.width }
func (v view) Height() int            { return v.g.height }
func (v view) InBounds(c Cell) bool   { return v.g.InBounds(c) }
func (v view) IsPassable(c Cell) bool { return v.g.passable(c) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
