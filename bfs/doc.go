// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning the minimum-edge path between two pixels together with the
// visualization marks of the run.
//
// What
//
//   - Explore cells outward in unit-cost rings from start, using the grid's
//     fixed neighbour order (down, up, right, left).
//   - Every cell is enqueued exactly once: it is marked visited (and Explored)
//     the moment it is discovered.
//   - The loop stops as soon as the destination has been discovered, so the
//     destination itself is never expanded.
//   - On success the predecessor chain is reconstructed and marked as Path.
//
// Why
//
//   - With unit edge costs, FIFO order yields non-decreasing distances, so the
//     first discovery of the destination is along a shortest path.
//
// Determinism
//
//	Neighbour order is fixed by gridgraph, and the queue is FIFO, so visit
//	order, marks, path and length are reproducible for identical input.
//
// Complexity (W×H grid)
//
//   - Time:   O(W×H)
//   - Memory: O(W×H) for queue, visited, distance and predecessor arrays.
//
// Usage
//
//	res, err := bfs.Search(g, start, dest)
//	switch {
//	case errors.Is(err, route.ErrUnreachable): ...
//	case errors.Is(err, route.ErrOutOfBounds): ...
//	}
//	fmt.Println(res.Length)
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithOnEnqueue(fn): hook when a cell is discovered.
//   - WithOnVisit(fn):   hook when a cell is dequeued; an error aborts the search.
//
// Errors
//
//   - *route.EndpointError wrapping route.ErrOutOfBounds / route.ErrInvalidVertex.
//   - route.ErrUnreachable when the queue empties first.
//   - ctx.Err() on cancellation, wrapped hook errors from OnVisit.
package bfs
