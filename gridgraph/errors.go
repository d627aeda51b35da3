package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the source has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNilPixels indicates a nil pixel source.
	ErrNilPixels = errors.New("gridgraph: pixel source is nil")
)
