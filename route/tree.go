package route

import "github.com/katalvlaran/pixpath/gridgraph"

// Tree is the per-call search state over a W×H grid: visited flags,
// distance from start, and the predecessor that first (or best) reached
// each cell. Storage is flat and indexed by GridGraph.Index.
type Tree struct {
	g       *gridgraph.GridGraph
	visited []bool
	reached []bool
	dist    []int
	prev    []int // -1: no predecessor
}

// NewTree allocates a fresh Tree sized to g.
// Complexity: O(W×H).
func NewTree(g *gridgraph.GridGraph) *Tree {
	n := g.Len()
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}

	return &Tree{
		g:       g,
		visited: make([]bool, n),
		reached: make([]bool, n),
		dist:    make([]int, n),
		prev:    prev,
	}
}

// Visit marks c visited. Visited flags are never cleared.
func (t *Tree) Visit(c gridgraph.Cell) {
	t.visited[t.g.Index(c)] = true
}

// Visited reports whether c has been visited.
func (t *Tree) Visited(c gridgraph.Cell) bool {
	return t.visited[t.g.Index(c)]
}

// Dist returns the recorded distance of c and whether c has been reached at all.
func (t *Tree) Dist(c gridgraph.Cell) (int, bool) {
	i := t.g.Index(c)

	return t.dist[i], t.reached[i]
}

// SetDist records d as the distance of c.
func (t *Tree) SetDist(c gridgraph.Cell, d int) {
	i := t.g.Index(c)
	t.dist[i] = d
	t.reached[i] = true
}

// SetPrev records p as the predecessor of c, replacing any earlier one.
func (t *Tree) SetPrev(c, p gridgraph.Cell) {
	t.prev[t.g.Index(c)] = t.g.Index(p)
}

// Prev returns the predecessor of c, if any.
func (t *Tree) Prev(c gridgraph.Cell) (gridgraph.Cell, bool) {
	p := t.prev[t.g.Index(c)]
	if p < 0 {
		return gridgraph.Cell{}, false
	}

	return t.g.Coordinate(p), true
}

// VisitedCount returns how many cells are marked visited.
func (t *Tree) VisitedCount() int {
	n := 0
	for _, v := range t.visited {
		if v {
			n++
		}
	}

	return n
}
