package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/pixpath/gridgraph"
)

// Name identifies results produced by this package.
const Name = "astar"

// ErrGraphNil indicates that a nil *gridgraph.GridGraph was passed to Search.
var ErrGraphNil = errors.New("astar: graph is nil")

// Heuristic estimates the remaining edge count from a to b.
type Heuristic func(a, b gridgraph.Cell) int

// Options configures the behavior of the search.
//
// Ctx       – cancellation and deadlines.
// OnVisit   – hook for each cell finalized by a non-stale pop; an error aborts.
// Heuristic – remaining-cost estimate; default gridgraph.Manhattan.
type Options struct {
	Ctx       context.Context
	OnVisit   func(c gridgraph.Cell, g int) error
	Heuristic Heuristic
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a no-op hook
// and the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(gridgraph.Cell, int) error { return nil },
		Heuristic: gridgraph.Manhattan,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback for every finalized cell.
func WithOnVisit(fn func(c gridgraph.Cell, g int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithHeuristic replaces the Manhattan estimate. A heuristic that overestimates
// forfeits the shortest-path guarantee.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
