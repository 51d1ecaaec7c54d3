package wavefront

import "github.com/katalvlaran/leeroute/grid"

// fifoEntry is a queued cell with the direction that produced it.
type fifoEntry struct {
	cell grid.Cell
	dir  Direction
}

// stateItem is one (cell, entry direction) state on the priority frontier.
// seq breaks cost ties in push order so expansion is deterministic.
type stateItem struct {
	cell grid.Cell
	dir  Direction
	cost float64
	seq  uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then seq.
// Outdated entries stay in the heap and are skipped when popped
// (lazy decrease-key).
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost, then by push order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
