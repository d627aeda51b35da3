package route

import "github.com/katalvlaran/pixpath/gridgraph"

// Result is the successful outcome of one search call.
//
//   - Algorithm: name of the search that produced it ("bfs", "astar").
//   - Length:    number of edges on the path; 0 when start == dest.
//   - Path:      cells from start to dest inclusive.
//   - Visited:   cells the search marked visited.
//   - Marks:     visualization layer (Start, Explored, Path).
type Result struct {
	Algorithm string
	Length    int
	Path      []gridgraph.Cell
	Visited   int
	Marks     *Marks
}
