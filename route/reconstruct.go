package route

import (
	"fmt"

	"github.com/katalvlaran/pixpath/gridgraph"
)

// Reconstruct walks predecessor links from dest back to start, marking every
// cell on the chain except start as Path in marks (marks may be nil).
// It returns the path ordered start → dest; len(path)-1 is its edge count.
//
// A chain that ends before reaching start yields ErrBrokenChain; marks may
// then be partially updated. The chain is bounded by W×H steps so a cyclic
// predecessor map cannot loop forever.
func Reconstruct(t *Tree, start, dest gridgraph.Cell, marks *Marks) ([]gridgraph.Cell, error) {
	path := []gridgraph.Cell{dest}
	limit := t.g.Len()
	for cur := dest; cur != start; {
		if marks != nil {
			marks.Set(t.g.Index(cur), Path)
		}
		p, ok := t.Prev(cur)
		if !ok || len(path) > limit {
			return nil, fmt.Errorf("%w: stopped at %v", ErrBrokenChain, cur)
		}
		path = append(path, p)
		cur = p
	}

	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
