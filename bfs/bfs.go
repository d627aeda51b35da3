package bfs

import (
	"fmt"

	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/route"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	g     *gridgraph.GridGraph
	opts  Options
	dest  gridgraph.Cell
	queue []gridgraph.Cell
	tree  *route.Tree
	marks *route.Marks
	nbuf  []gridgraph.Cell
}

// Search runs breadth-first search on g from start to dest and returns the
// minimum number of edges between them.
//
// Preconditions are checked by route.Validate before any state is created.
// Returns route.ErrUnreachable if dest is never discovered.
func Search(g *gridgraph.GridGraph, start, dest gridgraph.Cell, opts ...Option) (*route.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := route.Validate(g, start, dest); err != nil {
		return nil, err
	}

	w := &walker{
		g:     g,
		opts:  o,
		dest:  dest,
		queue: make([]gridgraph.Cell, 0, 64),
		tree:  route.NewTree(g),
		marks: route.NewMarks(g.Width, g.Height),
		nbuf:  make([]gridgraph.Cell, 0, 4),
	}

	// Seed with start: visited, distance 0, start mark.
	w.tree.Visit(start)
	w.tree.SetDist(start, 0)
	w.marks.Set(g.Index(start), route.Start)
	w.queue = append(w.queue, start)
	w.opts.OnEnqueue(start, 0)

	if err := w.loop(); err != nil {
		return nil, err
	}
	if !w.tree.Visited(dest) {
		return nil, route.ErrUnreachable
	}

	path, err := route.Reconstruct(w.tree, start, dest, w.marks)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	length, _ := w.tree.Dist(dest)

	return &route.Result{
		Algorithm: Name,
		Length:    length,
		Path:      path,
		Visited:   w.tree.VisitedCount(),
		Marks:     w.marks,
	}, nil
}

// loop processes the queue until it empties, the destination has been
// discovered, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.tree.Visited(w.dest) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.dequeue()
		du, _ := w.tree.Dist(u)
		if err := w.opts.OnVisit(u, du); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", u, err)
		}
		w.enqueueNeighbors(u, du)
	}

	return nil
}

// dequeue pops the head of the FIFO queue.
func (w *walker) dequeue() gridgraph.Cell {
	u := w.queue[0]
	w.queue = w.queue[1:]

	return u
}

// enqueueNeighbors discovers every valid, unvisited neighbour of u in the
// grid's fixed order.
func (w *walker) enqueueNeighbors(u gridgraph.Cell, du int) {
	w.nbuf = w.g.AppendNeighbors(w.nbuf[:0], u)
	for _, v := range w.nbuf {
		if w.tree.Visited(v) || !w.g.IsValid(v) {
			continue
		}
		w.tree.Visit(v)
		w.marks.Set(w.g.Index(v), route.Explored)
		w.tree.SetDist(v, du+1)
		w.tree.SetPrev(v, u)
		w.queue = append(w.queue, v)
		w.opts.OnEnqueue(v, du+1)
	}
}
