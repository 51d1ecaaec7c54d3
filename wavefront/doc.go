// Package wavefront implements Lee-style wavefront expansion and backtrace on
// a two-layer routing grid with bend and via penalties.
//
// Overview:
//
//   - Expand propagates accumulated cost from a source cell until the target
//     cell is dequeued, producing a Field of per-cell costs and the direction
//     of the move that produced each cost.
//   - Backtrace walks the Field from the target back to the source, choosing
//     at each step the passable neighbour with the strictly smallest cost.
//   - Route runs both and returns the cell path with its total cost.
//
// Edge costs:
//
//   - In-plane move (East/West/South/North): 1, plus BendPenalty when the
//     move is perpendicular to the in-plane move that entered the current cell.
//   - Via (Up/Down, same x and y): 1 + ViaPenalty. A via never pays a bend
//     penalty and does not count as a previous direction, so the first
//     in-plane move after a via is never charged for bending.
//
// Frontier policies:
//
//   - FrontierPriority (default): cost-ordered frontier over (cell, entry
//     axis) states. Because the bend charge depends on how a cell was
//     entered, keeping one state per axis is what makes the result minimal
//     for any penalty values. The Field reports the best state per cell.
//   - FrontierFIFO: strict arrival order with a single state per cell. Each
//     queued entry carries the direction that produced it and a cell is
//     processed at most once. Exact for zero penalties; with non-zero
//     penalties the first dequeue of the target may not be minimal.
//
// Backtrace and tie-breaking:
//
//   - Backtrace ignores the Field's direction history and re-derives the
//     path from costs alone. Ties are broken by the fixed scan order
//     East, West, South, North, Up, Down, so the returned path need not be
//     the one the expansion priced. The reported cost is always the target's
//     Field cost.
//
// Complexity:
//
//   - FrontierPriority: O(S log S) time, S = 3×2×W×H states; O(S) memory.
//   - FrontierFIFO: O(E) queue operations, E ≤ 6×2×W×H per improvement round.
//   - Backtrace: O(P) where P is the path length.
//
// Errors:
//
//   - ErrNoPath: target unreachable under the current obstacles.
//   - ErrOutOfBounds: source or target outside the grid.
//   - ErrBadPenalty: negative or NaN penalty.
//   - ErrUnknownFrontier: Frontier value not recognised.
//   - ErrNilGrid, ErrNilField: nil inputs.
//   - context errors when Options.Ctx is cancelled mid-expansion.
//
// Thread safety:
//
//   - Each call allocates its own Field and frontier; concurrent calls over
//     the same grid.Reader are safe as long as the grid is not mutated.
package wavefront
