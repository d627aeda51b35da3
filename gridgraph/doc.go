// Package gridgraph treats a raster image as an implicit, 4-connected grid
// graph whose vertices are the "bright" pixels.
//
// What:
//
//   - GridGraph wraps any Pixels source (e.g. *raster.Grid) with a tunable Threshold.
//   - A Cell is traversable (valid) iff at least one of its R/G/B channels is
//     strictly greater than Threshold (default 100).
//   - Neighbors enumerates the axis-aligned neighbours of a Cell in a fixed,
//     deterministic order: down, up, right, left.
//   - ConnectedComponents finds islands of valid cells.
//
// Why:
//
//   - Search algorithms (bfs, astar) only ever ask two questions of the image:
//     "is this cell walkable?" and "who are its neighbours?".
//   - Traversability is captured once, at construction, so later recolouring of
//     the source image (for visualization) can never change the graph.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory.
//   - IsValid, InBounds:   O(1).
//   - Neighbors:           O(1) (at most 4 cells).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrNilPixels: source is nil.
//   - ErrEmptyGrid: source has no rows or no columns.
package gridgraph
