// Package pixpath finds shortest paths across the bright pixels of an image
// and shows how each search got there.
//
// 🚀 What is pixpath?
//
//	An image is read as an implicit grid graph: every pixel with at least one
//	colour channel above a brightness threshold (100 by default) is a vertex,
//	and vertices touch their up, down, left and right neighbours. Two searches
//	run over the same query on private copies of the image:
//		• BFS: level by level, optimal on unit steps
//		• A*:  best-first on g + Manhattan distance, same length, usually fewer cells
//	Each copy is painted afterwards: explored cells green, the path red and
//	the start blue.
//
// Under the hood:
//
//	raster/            pixel buffer, BMP/PNG codec
//	gridgraph/         walkability snapshot, neighbours, connected components
//	route/             marks, predecessor tree, path reconstruction, error taxonomy
//	bfs/               breadth-first search
//	astar/             A* with a deterministic (f, x, y) heap order
//	render/            mark → colour painting
//	pathfind/          (row, col) entry points, Compare, JSON report
//	internal/config/   optional JSON configuration
//	cmd/pixpath/       command-line front end
//
// Quick ASCII example (# is dark, S start, D destination):
//
//	S . .
//	. # .
//	. . D
//
//	Both searches report length 4; BFS and A* each visit 8 cells.
//
//	go install github.com/katalvlaran/pixpath/cmd/pixpath@latest
package pixpath
