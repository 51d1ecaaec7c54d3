// Package netroute routes multi-pin nets over a grid.Grid and keeps the
// results in a per-router Registry.
//
// A net [p0, p1, …, pk] is routed as k independent wavefront segments
// p0→p1, p1→p2, …; the segment paths are joined without repeating the shared
// junction pins and their costs are summed. A net is routed atomically: if
// any segment fails nothing is written to the Registry.
//
// Pins are clamped into the grid before routing. Obstacles are read under the
// grid's read lock for the whole net, so MarkObstacle calls wait for an
// in-flight net and never interleave with it.
//
// RouteNets routes a batch with bounded parallelism. Every net gets its own
// search state; results enter the Registry in input order.
package netroute
