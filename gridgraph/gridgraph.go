package gridgraph

// New builds a GridGraph over src. Traversability of every cell is evaluated
// once, against the colours src has right now.
// Returns ErrNilPixels or ErrEmptyGrid for unusable sources.
// Complexity: O(W×H) time and memory.
func New(src Pixels, opts GridOptions) (*GridGraph, error) {
	if src == nil {
		return nil, ErrNilPixels
	}
	w, h := src.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	valid := make([]bool, w*h)
	t := opts.Threshold
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := src.RGB(x, y)
			valid[y*w+x] = r > t || g > t || b > t
		}
	}

	return &GridGraph{Width: w, Height: h, Threshold: t, valid: valid}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// IsValid reports whether c is in bounds and traversable.
// Complexity: O(1).
func (gg *GridGraph) IsValid(c Cell) bool {
	return gg.InBounds(c) && gg.valid[gg.Index(c)]
}

// Neighbors returns the in-bounds axis-aligned neighbours of c in the order
// down, up, right, left. Traversability is not checked.
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))

	return gg.AppendNeighbors(out, c)
}

// AppendNeighbors is Neighbors without allocation: it appends to dst and
// returns the extended slice. Search loops reuse one buffer through it.
func (gg *GridGraph) AppendNeighbors(dst []Cell, c Cell) []Cell {
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps c to its row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|, the admissible 4-connected distance estimate.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
