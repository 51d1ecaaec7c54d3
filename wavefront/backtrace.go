package wavefront

import (
	"fmt"

	"github.com/katalvlaran/leeroute/grid"
)

// Backtrace reconstructs a path from src to dst using only the costs in f.
//
// Starting at dst it examines the six reverse moves in scan order and steps
// to the in-bounds, passable neighbour with the strictly smallest cost,
// until src is reached. src itself is accepted even when it is an obstacle.
// Each step must strictly lower the cost; if no neighbour does, or dst was
// never reached, ErrNoPath is returned.
//
// The returned cost is f.Cost(dst).
// Complexity: O(P) for a path of P cells.
func Backtrace(r grid.Reader, f *Field, src, dst grid.Cell) ([]grid.Cell, float64, error) {
	if r == nil {
		return nil, 0, ErrNilGrid
	}
	if f == nil {
		return nil, 0, ErrNilField
	}
	total := f.Cost(dst)
	if !f.Reached(dst) {
		return nil, 0, fmt.Errorf("%w: %v was not reached", ErrNoPath, dst)
	}

	path := []grid.Cell{dst}
	cur := dst
	for cur != src {
		prev, ok := bestPredecessor(r, f, src, cur)
		if !ok {
			return nil, 0, fmt.Errorf("%w: backtrace stalled at %v", ErrNoPath, cur)
		}
		path = append(path, prev)
		cur = prev
	}

	// Collected target-first; flip to source-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}

// bestPredecessor returns the cheapest legal neighbour of cur, first in scan
// order on ties, provided it is strictly cheaper than cur.
func bestPredecessor(r grid.Reader, f *Field, src, cur grid.Cell) (grid.Cell, bool) {
	var best grid.Cell
	bestCost := f.Cost(cur)
	found := false
	for d := East; d < numDirections; d++ {
		p := d.Back(cur)
		if !r.InBounds(p) {
			continue
		}
		if p != src && !r.IsPassable(p) {
			continue
		}
		if c := f.Cost(p); c < bestCost {
			best, bestCost, found = p, c, true
		}
	}

	return best, found
}

// Route expands from src to dst and backtraces the result.
func Route(r grid.Reader, src, dst grid.Cell, opts ...Option) ([]grid.Cell, float64, error) {
	f, err := Expand(r, src, dst, opts...)
	if err != nil {
		return nil, 0, err
	}

	return Backtrace(r, f, src, dst)
}
