// Package pathfind is the invocation surface of the module: it takes a
// decoded image and two (row, column) points, runs BFS and/or A* on
// private copies of the image, paints the results and reports the lengths.
//
// Coordinates
//
//	Callers speak (row, col); the grid speaks (x, y). Point.Cell maps
//	row → Y and col → X. Nothing else in the module sees rows and columns.
//
// Isolation
//
//	Every Run clones the source image; the caller's buffer is never written.
//	Two runs therefore share no mutable state and Compare may execute them
//	concurrently (WithParallel) with identical results.
//
// Errors
//
//	Search failures keep their route sentinels (errors.Is(err,
//	route.ErrUnreachable) etc.) and are prefixed with the algorithm name.
//	Endpoint failures arrive as *PointError, naming the point in (row, col).
//	ErrLengthMismatch means the two optimal searches disagreed, which is a bug.
package pathfind
