package pathfind

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pixpath/astar"
	"github.com/katalvlaran/pixpath/bfs"
	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/render"
	"github.com/katalvlaran/pixpath/route"
)

// Run executes algo from → to on a private copy of src and paints the result
// onto that copy. src itself is never modified.
// On failure no image is returned. Endpoints are checked before the palette,
// so an unusable query is reported as such even when the palette is also bad.
func Run(ctx context.Context, src *raster.Grid, algo Algorithm, from, to Point, opts ...Option) (*Outcome, error) {
	return run(ctx, src, algo, from, to, newConfig(opts))
}

func run(ctx context.Context, src *raster.Grid, algo Algorithm, from, to Point, cfg config) (*Outcome, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	log := cfg.logger.With("algorithm", algo.String(), "from", from.String(), "to", to.String())

	img := src.Clone()
	g, err := gridgraph.New(img, gridgraph.GridOptions{Threshold: cfg.threshold})
	if err != nil {
		return nil, fmt.Errorf("pathfind: %w", err)
	}
	if err := route.Validate(g, from.Cell(), to.Cell()); err != nil {
		err = withPoint(err)
		log.Warn("search rejected", "err", err)
		return nil, fmt.Errorf("pathfind: %s: %w", algo, err)
	}
	if err := cfg.palette.Validate(cfg.threshold); err != nil {
		return nil, err
	}

	log.Debug("search started", "width", g.Width, "height", g.Height)
	var res *route.Result
	switch algo {
	case BFS:
		res, err = bfs.Search(g, from.Cell(), to.Cell(), bfs.WithContext(ctx))
	case AStar:
		res, err = astar.Search(g, from.Cell(), to.Cell(), astar.WithContext(ctx))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
	if err != nil {
		err = withPoint(err)
		log.Warn("search failed", "err", err)
		return nil, fmt.Errorf("pathfind: %s: %w", algo, err)
	}

	if err := render.Paint(img, res.Marks, cfg.palette); err != nil {
		return nil, fmt.Errorf("pathfind: %w", err)
	}
	log.Info("search finished", "length", res.Length, "visited", res.Visited)

	return &Outcome{Algorithm: algo, Result: res, Image: img}, nil
}

// Compare runs BFS and A* on independent copies of src.
//
// Sequentially (the default) BFS runs first and its failure ends the call
// without running A*. With WithParallel(true) both run concurrently; when
// both fail, the BFS error is reported.
//
// Both searches are optimal, so their lengths must agree; a disagreement
// returns ErrLengthMismatch together with the (non-nil) Comparison.
func Compare(ctx context.Context, src *raster.Grid, from, to Point, opts ...Option) (*Comparison, error) {
	cfg := newConfig(opts)
	if src == nil {
		return nil, ErrNilImage
	}

	var bfsOut, astarOut *Outcome
	if cfg.parallel {
		var bfsErr, astarErr error
		var eg errgroup.Group
		eg.Go(func() error {
			bfsOut, bfsErr = run(ctx, src, BFS, from, to, cfg)
			return bfsErr
		})
		eg.Go(func() error {
			astarOut, astarErr = run(ctx, src, AStar, from, to, cfg)
			return astarErr
		})
		_ = eg.Wait()
		if bfsErr != nil {
			return nil, bfsErr
		}
		if astarErr != nil {
			return nil, astarErr
		}
	} else {
		var err error
		if bfsOut, err = run(ctx, src, BFS, from, to, cfg); err != nil {
			return nil, err
		}
		if astarOut, err = run(ctx, src, AStar, from, to, cfg); err != nil {
			return nil, err
		}
	}

	c := &Comparison{
		From:   from,
		To:     to,
		Width:  src.Width,
		Height: src.Height,
		Length: bfsOut.Result.Length,
		BFS:    bfsOut,
		AStar:  astarOut,
	}
	if bfsOut.Result.Length != astarOut.Result.Length {
		cfg.logger.Error("length mismatch", "bfs", bfsOut.Result.Length, "astar", astarOut.Result.Length)
		return c, fmt.Errorf("%w: bfs=%d astar=%d", ErrLengthMismatch, bfsOut.Result.Length, astarOut.Result.Length)
	}

	return c, nil
}

// Reachable reports whether a 4-connected walkable path joins from and to,
// without running either search. Endpoint failures are returned as
// *PointError, exactly as the searches would report them.
func Reachable(src *raster.Grid, from, to Point, opts ...Option) (bool, error) {
	cfg := newConfig(opts)
	if src == nil {
		return false, ErrNilImage
	}
	g, err := gridgraph.New(src, gridgraph.GridOptions{Threshold: cfg.threshold})
	if err != nil {
		return false, fmt.Errorf("pathfind: %w", err)
	}
	if err := route.Validate(g, from.Cell(), to.Cell()); err != nil {
		return false, fmt.Errorf("pathfind: %w", withPoint(err))
	}

	return g.Connected(from.Cell(), to.Cell()), nil
}

// withPoint restates a *route.EndpointError in (row, col) terms.
// Other errors are returned unchanged.
func withPoint(err error) error {
	var ep *route.EndpointError
	if !errors.As(err, &ep) {
		return err
	}

	return &PointError{Endpoint: ep.Endpoint, Point: PointOf(ep.Cell), Err: ep}
}
