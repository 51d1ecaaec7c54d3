package wavefront

import (
	"container/heap"
	"container/list"
	"fmt"
	"math"

	"github.com/katalvlaran/leeroute/grid"
)

// ctxCheckInterval is how many dequeues pass between context checks.
const ctxCheckInterval = 1024

// Expand propagates cost from src across r until dst is dequeued.
//
// Preconditions and validation (in order):
//  1. r must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadPenalty, ErrUnknownFrontier).
//  3. src and dst must be in bounds (ErrOutOfBounds).
//
// Passability is not required of src; a dst that is an obstacle is never
// reached. Returns ErrNoPath when the frontier empties with dst at +Inf.
func Expand(r grid.Reader, src, dst grid.Cell, opts ...Option) (*Field, error) {
	if r == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !r.InBounds(src) {
		return nil, fmt.Errorf("%w: source %v", ErrOutOfBounds, src)
	}
	if !r.InBounds(dst) {
		return nil, fmt.Errorf("%w: target %v", ErrOutOfBounds, dst)
	}

	x := &expander{
		r:     r,
		opts:  cfg,
		src:   src,
		dst:   dst,
		field: newField(r.Width(), r.Height()),
	}
	x.field.set(src, 0, None)

	var err error
	if cfg.Frontier == FrontierFIFO {
		err = x.runFIFO()
	} else {
		err = x.runPriority()
	}
	if err != nil {
		return nil, err
	}
	if !x.field.Reached(dst) {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoPath, src, dst)
	}

	return x.field, nil
}

// expander holds the mutable state of a single expansion.
type expander struct {
	r        grid.Reader
	opts     Options
	src, dst grid.Cell
	field    *Field
	pops     int
}

// tick counts a dequeue and reports a cancelled context.
func (x *expander) tick() error {
	x.pops++
	if x.pops%ctxCheckInterval == 1 {
		return x.opts.Ctx.Err()
	}
	return nil
}

// runFIFO processes cells in arrival order. A cell is offered to the queue
// whenever its cost strictly improves and is processed at most once, using
// the direction carried by the entry that is dequeued first.
func (x *expander) runFIFO() error {
	f := x.field
	processed := make([]bool, f.size())
	q := list.New()
	q.PushBack(fifoEntry{cell: x.src, dir: None})

	for q.Len() > 0 {
		if err := x.tick(); err != nil {
			return err
		}
		e := q.Remove(q.Front()).(fifoEntry)
		if e.cell == x.dst {
			break
		}
		i := f.index(e.cell)
		if processed[i] {
			continue
		}
		processed[i] = true
		f.settled++

		base := f.Cost(e.cell)
		for d := East; d < numDirections; d++ {
			n := d.Step(e.cell)
			if !x.r.IsPassable(n) {
				continue
			}
			nc := base + x.opts.stepCost(e.dir, d)
			if nc < f.Cost(n) {
				f.set(n, nc, d)
				q.PushBack(fifoEntry{cell: n, dir: d})
			}
		}
	}

	return nil
}

// runPriority is Dijkstra over (cell, entry axis) states. The first time any
// state of dst is popped its cost is minimal.
func (x *expander) runPriority() error {
	f := x.field
	best := make([]float64, f.size()*int(numAxes))
	for i := range best {
		best[i] = math.Inf(1)
	}
	done := make([]bool, len(best))
	cellDone := make([]bool, f.size())

	var seq uint64
	pq := make(statePQ, 0, f.size())
	heap.Init(&pq)
	best[x.state(x.src, None)] = 0
	heap.Push(&pq, &stateItem{cell: x.src, dir: None, cost: 0})

	for pq.Len() > 0 {
		if err := x.tick(); err != nil {
			return err
		}
		it := heap.Pop(&pq).(*stateItem)
		s := x.state(it.cell, it.dir)
		if done[s] {
			continue
		}
		done[s] = true
		if ci := f.index(it.cell); !cellDone[ci] {
			cellDone[ci] = true
			f.settled++
		}
		if it.cell == x.dst {
			break
		}

		for d := East; d < numDirections; d++ {
			n := d.Step(it.cell)
			if !x.r.IsPassable(n) {
				continue
			}
			nc := it.cost + x.opts.stepCost(it.dir, d)
			ns := x.state(n, d)
			if nc >= best[ns] {
				continue
			}
			best[ns] = nc
			if nc < f.Cost(n) {
				f.set(n, nc, d)
			}
			seq++
			heap.Push(&pq, &stateItem{cell: n, dir: d, cost: nc, seq: seq})
		}
	}

	return nil
}

// state indexes the (cell, entry axis) pair.
func (x *expander) state(c grid.Cell, d Direction) int {
	return x.field.index(c)*int(numAxes) + int(d.axis())
}
