// Package astar implements heuristic best-first (A*) search over a
// gridgraph.GridGraph with unit edge costs.
//
// Overview:
//
//   - The frontier is a min-heap keyed by f = g + h, where g is the edge count
//     from start and h is the Manhattan distance to the destination.
//   - Manhattan distance is admissible and consistent for 4-connected unit-cost
//     movement, so the first time the destination is popped its g is optimal:
//     A* returns the same length as BFS while usually visiting fewer cells.
//   - Ties on f are broken lexicographically on (X, Y), making output reproducible.
//
// Lazy decrease-key:
//
//   - A cell may sit in the heap several times with improving f-scores.
//   - Only the first pop of an unvisited cell is acted upon; later (stale)
//     entries for an already-visited cell are discarded.
//
// Marks:
//
//   - Start keeps its Start mark; every other popped cell except the
//     destination is marked Explored; the reconstructed chain is marked Path.
//
// Performance and complexity (N = W×H):
//
//   - Time:  O(N log N)
//   - Space: O(N) for visited/g/predecessor arrays, O(N) heap entries worst case.
//
// Error handling:
//
//   - ErrGraphNil for a nil graph.
//   - *route.EndpointError wrapping route.ErrOutOfBounds / route.ErrInvalidVertex.
//   - route.ErrUnreachable when the heap empties before the destination is popped.
//   - ctx.Err() on cancellation, wrapped OnVisit hook errors.
//
// API reference:
//
//	func Search(g *gridgraph.GridGraph, start, dest gridgraph.Cell, opts ...Option) (*route.Result, error)
//
//	  - WithContext(ctx):     cancellation, checked once per pop.
//	  - WithOnVisit(fn):      called for every non-stale pop with the cell's g-score.
//	  - WithHeuristic(fn):    replace Manhattan; must stay admissible and consistent.
package astar
