// Package route holds the bookkeeping shared by the grid searches: endpoint
// validation, the failure taxonomy, per-call visited/distance/predecessor
// storage, path reconstruction and visualization marks.
//
// What
//
//   - Validate checks start and destination in a fixed order and reports the first failure.
//   - Tree stores, for one search call, visited flags, distances (with an explicit
//     "not reached" state) and predecessor links in flat arrays indexed y*W+x.
//   - Marks is a per-cell layer of {Start, Explored, Path} annotations, later
//     resolved to colours by package render.
//   - Reconstruct walks predecessors from destination back to start and marks the path.
//
// Errors
//
//   - ErrOutOfBounds    start or destination lies outside the image.
//   - ErrInvalidVertex  start or destination pixel is too dark to walk on.
//   - ErrUnreachable    no 4-connected path exists.
//   - ErrBrokenChain    internal: a predecessor chain ended before reaching start.
//
// Endpoint failures are returned as *EndpointError, which unwraps to the
// sentinel and names which endpoint failed:
//
//	var epErr *route.EndpointError
//	if errors.As(err, &epErr) && epErr.Endpoint == route.DestPoint { ... }
//
// Lifecycle
//
//	Every Tree and Marks value belongs to exactly one search call; nothing is
//	global and nothing is reused between calls.
package route
