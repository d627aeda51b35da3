package astar

import "github.com/katalvlaran/pixpath/gridgraph"

// nodeItem is one frontier entry: a cell and the f-score it was pushed with.
type nodeItem struct {
	cell gridgraph.Cell
	f    int
}

// nodePQ is a min-heap of *nodeItem ordered by f, then lexicographically
// by (X, Y). Outdated entries stay in the heap and are skipped on pop.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, breaking ties on the cell so the pop order is total.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].cell.Less(pq[j].cell)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
