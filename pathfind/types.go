package pathfind

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/render"
	"github.com/katalvlaran/pixpath/route"
)

// Sentinel errors for pathfind operations.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("pathfind: source image is nil")

	// ErrBadPoint indicates a point string that is not "row,col".
	ErrBadPoint = errors.New("pathfind: point must be \"row,col\"")

	// ErrUnknownAlgorithm indicates an algorithm name ParseAlgorithm does not know.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrLengthMismatch indicates BFS and A* returned different lengths.
	ErrLengthMismatch = errors.New("pathfind: bfs and astar path lengths differ")
)

// PointError is an endpoint failure expressed in the caller's (row, col)
// coordinates. It unwraps to the *route.EndpointError it restates, so
// errors.Is(err, route.ErrOutOfBounds) and errors.As into either type work.
type PointError struct {
	Endpoint route.Endpoint
	Point    Point
	Err      *route.EndpointError
}

// Error implements error.
func (e *PointError) Error() string {
	return fmt.Sprintf("%v: %s %s (row,col)", e.Err.Kind, e.Endpoint, e.Point)
}

// Unwrap exposes the underlying endpoint error.
func (e *PointError) Unwrap() error {
	return e.Err
}

// Point is an external (row, column) coordinate.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell converts p to the grid's (x, y) = (col, row) convention.
func (p Point) Cell() gridgraph.Cell {
	return gridgraph.Cell{X: p.Col, Y: p.Row}
}

// PointOf converts a grid cell back to (row, col).
func PointOf(c gridgraph.Cell) Point {
	return Point{Row: c.Y, Col: c.X}
}

// String renders p as "row,col", the format ParsePoint accepts.
func (p Point) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// ParsePoint parses "row,col" (surrounding spaces allowed).
func ParsePoint(s string) (Point, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
	}

	return Point{Row: row, Col: col}, nil
}

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS is unweighted breadth-first search.
	BFS Algorithm = iota
	// AStar is heuristic best-first search with the Manhattan heuristic.
	AStar
)

// String returns "bfs" or "astar".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "bfs", "astar", "a*" and "best-first" (case-insensitive).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "astar", "a*", "best-first", "bestfs":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Outcome is one successful run: the search result and the painted copy.
type Outcome struct {
	Algorithm Algorithm
	Result    *route.Result
	Image     *raster.Grid
}

// Comparison holds both runs over the same query.
type Comparison struct {
	From, To      Point
	Width, Height int
	Length        int
	BFS           *Outcome
	AStar         *Outcome
}

// Option configures Run and Compare.
type Option func(*config)

type config struct {
	threshold uint8
	palette   render.Palette
	logger    *slog.Logger
	parallel  bool
}

func newConfig(opts []Option) config {
	c := config{
		threshold: gridgraph.DefaultThreshold,
		palette:   render.DefaultPalette(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithThreshold sets the brightness a channel must exceed to be walkable.
func WithThreshold(t uint8) Option {
	return func(c *config) { c.threshold = t }
}

// WithPalette sets the colours used to paint results.
func WithPalette(p render.Palette) Option {
	return func(c *config) { c.palette = p }
}

// WithLogger routes run diagnostics to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallel makes Compare run both searches concurrently.
func WithParallel(on bool) Option {
	return func(c *config) { c.parallel = on }
}
