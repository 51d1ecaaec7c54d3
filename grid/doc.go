// Package grid stores the two-layer routing plane used by the Lee router.
//
// What:
//
//   - Grid holds, for each of the two layers, a Width×Height bitmap of
//     free and obstacle cells.
//   - Cell addresses a single position as (layer, x, y).
//   - Reader is the read-only view consumed by the search packages.
//
// Why:
//
//   - PCB/IC layout: keep-out regions, existing traces and pads are marked as
//     obstacles before any net is routed.
//   - The store carries no search logic, so one Grid can back many routes.
//
// Invariants:
//
//   - Obstacle marking is monotonic. Nothing in this module clears a marked cell.
//   - MarkObstacle silently ignores out-of-bounds coordinates.
//   - IsPassable reports false for obstacles and for out-of-bounds cells.
//
// Concurrency:
//
//   - All exported methods are safe for concurrent use.
//   - View holds the read lock for the duration of a callback, so a search
//     sees one consistent grid and MarkObstacle waits until it returns.
//
// Complexity:
//
//   - MarkObstacle, IsPassable, InBounds, Clamp: O(1).
//   - ObstacleCount: O(W×H).
//   - Memory: O(2×W×H) bits stored as bytes.
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
package grid
