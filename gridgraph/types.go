package gridgraph

import "fmt"

// DefaultThreshold is the brightness a channel must exceed for a cell to be traversable.
const DefaultThreshold uint8 = 100

// Cell identifies one pixel position. X is the column, Y the row.
// It is an immutable value type and may be used as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as (x,y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders cells lexicographically on (X, Y).
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// Pixels is the read-only view of an image the adapter needs.
type Pixels interface {
	// Size returns the width and height in pixels.
	Size() (w, h int)
	// RGB returns the colour channels at (x,y); x in [0,w), y in [0,h).
	RGB(x, y int) (r, g, b uint8)
}

// GridOptions contains tunable parameters for the adapter.
type GridOptions struct {
	// Threshold: a cell is valid iff some channel is strictly greater.
	Threshold uint8
}

// DefaultGridOptions returns GridOptions with Threshold=DefaultThreshold.
func DefaultGridOptions() GridOptions {
	return GridOptions{Threshold: DefaultThreshold}
}

// neighborOffsets is the fixed expansion order: down, up, right, left.
// It decides tie-breaking in both searches, so it must not change.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// GridGraph is an immutable snapshot of which cells of a W×H image are traversable.
type GridGraph struct {
	Width, Height int
	Threshold     uint8
	valid         []bool // row-major, len == Width*Height
}
