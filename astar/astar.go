package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/route"
)

// Search finds a minimum-edge path from start to dest on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. start/dest in bounds, then start/dest valid (route.Validate).
//
// Returns route.ErrUnreachable if the frontier empties first.
func Search(g *gridgraph.GridGraph, start, dest gridgraph.Cell, opts ...Option) (*route.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := route.Validate(g, start, dest); err != nil {
		return nil, err
	}

	r := &runner{
		g:     g,
		opts:  cfg,
		start: start,
		dest:  dest,
		tree:  route.NewTree(g),
		marks: route.NewMarks(g.Width, g.Height),
		pq:    make(nodePQ, 0, 64),
		nbuf:  make([]gridgraph.Cell, 0, 4),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if !r.tree.Visited(dest) {
		return nil, route.ErrUnreachable
	}

	path, err := route.Reconstruct(r.tree, start, dest, r.marks)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	length, _ := r.tree.Dist(dest)

	return &route.Result{
		Algorithm: Name,
		Length:    length,
		Path:      path,
		Visited:   r.tree.VisitedCount(),
		Marks:     r.marks,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g     *gridgraph.GridGraph
	opts  Options
	start gridgraph.Cell
	dest  gridgraph.Cell
	tree  *route.Tree // visited, g-scores, predecessors
	marks *route.Marks
	pq    nodePQ
	nbuf  []gridgraph.Cell
}

// init marks start, sets g(start)=0 and pushes it with f = h(start).
func (r *runner) init() {
	r.marks.Set(r.g.Index(r.start), route.Start)
	r.tree.SetDist(r.start, 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: r.start, f: r.opts.Heuristic(r.start, r.dest)})
}

// process pops cells in (f, X, Y) order until the destination is finalized
// or the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		u := heap.Pop(&r.pq).(*nodeItem).cell
		// Skip stale heap entry.
		if r.tree.Visited(u) {
			continue
		}
		r.tree.Visit(u)
		if u != r.start && u != r.dest {
			r.marks.Set(r.g.Index(u), route.Explored)
		}

		gu, _ := r.tree.Dist(u)
		if err := r.opts.OnVisit(u, gu); err != nil {
			return fmt.Errorf("astar: OnVisit error at %v: %w", u, err)
		}
		if u == r.dest {
			return nil
		}
		r.relax(u, gu)
	}

	return nil
}

// relax pushes every valid, unvisited neighbour of u whose tentative
// g-score strictly improves on the recorded one.
func (r *runner) relax(u gridgraph.Cell, gu int) {
	r.nbuf = r.g.AppendNeighbors(r.nbuf[:0], u)
	for _, v := range r.nbuf {
		if r.tree.Visited(v) || !r.g.IsValid(v) {
			continue
		}
		tentative := gu + 1
		if gv, ok := r.tree.Dist(v); ok && tentative >= gv {
			continue
		}
		r.tree.SetDist(v, tentative)
		r.tree.SetPrev(v, u)
		heap.Push(&r.pq, &nodeItem{cell: v, f: tentative + r.opts.Heuristic(v, r.dest)})
	}
}
