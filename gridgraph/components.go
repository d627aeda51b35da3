package gridgraph

// ConnectedComponents finds all 4-connected regions ("islands") of valid cells.
// Returns a slice of components; each component is a slice of row-major cell
// indices in BFS discovery order. Components are ordered by their first cell
// in row-major scan order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Len()
	seen := make([]bool, total)
	var comps [][]int
	var nbuf []Cell

	for i0 := 0; i0 < total; i0++ {
		if !gg.valid[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := gg.Coordinate(queue[qi])
			nbuf = gg.AppendNeighbors(nbuf[:0], u)
			for _, v := range nbuf {
				vi := gg.Index(v)
				if gg.valid[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// ComponentLabels returns, for every cell, the index of the component that
// contains it in ConnectedComponents order, or -1 for non-traversable cells.
func (gg *GridGraph) ComponentLabels() []int {
	labels := make([]int, gg.Len())
	for i := range labels {
		labels[i] = -1
	}
	for ci, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = ci
		}
	}

	return labels
}

// Connected reports whether a and b are both valid and lie in the same component.
// Complexity: O(W·H).
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.IsValid(a) || !gg.IsValid(b) {
		return false
	}
	labels := gg.ComponentLabels()

	return labels[gg.Index(a)] == labels[gg.Index(b)]
}
