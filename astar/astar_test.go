package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pixpath/astar"
	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/route"
)

// maze builds a GridGraph from rows of '.' (bright) and '#' (dark).
func maze(t testing.TB, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	img, err := raster.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				img.Set(x, y, raster.RGB{R: 200, G: 200, B: 200})
			}
		}
	}
	g, err := gridgraph.New(img, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return g
}

func cell(x, y int) gridgraph.Cell { return gridgraph.Cell{X: x, Y: y} }

// SearchSuite exercises the heuristic search under various scenarios.
type SearchSuite struct {
	suite.Suite
}

// TestPreconditions verifies the failure taxonomy and its check order.
func (s *SearchSuite) TestPreconditions() {
	_, err := astar.Search(nil, cell(0, 0), cell(0, 0))
	require.ErrorIs(s.T(), err, astar.ErrGraphNil)

	g := maze(s.T(),
		".#.",
		"##.",
	)
	_, err = astar.Search(g, cell(3, 0), cell(0, 0))
	require.ErrorIs(s.T(), err, route.ErrOutOfBounds)

	_, err = astar.Search(g, cell(0, 0), cell(0, 2))
	require.ErrorIs(s.T(), err, route.ErrOutOfBounds)

	_, err = astar.Search(g, cell(1, 0), cell(0, 0))
	require.ErrorIs(s.T(), err, route.ErrInvalidVertex)

	var epErr *route.EndpointError
	_, err = astar.Search(g, cell(0, 0), cell(0, 1))
	require.ErrorAs(s.T(), err, &epErr)
	require.Equal(s.T(), route.DestPoint, epErr.Endpoint)
	require.ErrorIs(s.T(), err, route.ErrInvalidVertex)

	_, err = astar.Search(g, cell(0, 0), cell(2, 1))
	require.ErrorIs(s.T(), err, route.ErrUnreachable)
}

// TestBlockedCentre checks the 3×3 example: length 4, five path cells,
// centre untouched, start keeps its mark.
func (s *SearchSuite) TestBlockedCentre() {
	g := maze(s.T(),
		"...",
		".#.",
		"...",
	)
	res, err := astar.Search(g, cell(0, 0), cell(2, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Length)
	require.Len(s.T(), res.Path, 5)
	// ties on f resolve to the smaller X first, so the left column wins
	want := []gridgraph.Cell{cell(0, 0), cell(0, 1), cell(0, 2), cell(1, 2), cell(2, 2)}
	if diff := cmp.Diff(want, res.Path); diff != "" {
		s.T().Errorf("path mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), route.None, res.Marks.At(g.Index(cell(1, 1))))
	require.Equal(s.T(), route.Start, res.Marks.At(g.Index(cell(0, 0))))
	require.Equal(s.T(), 4, res.Marks.Count(route.Path))
	require.Equal(s.T(), astar.Name, res.Algorithm)
}

// TestStartIsDest returns 0 on a 1×1 image.
func (s *SearchSuite) TestStartIsDest() {
	g := maze(s.T(), ".")
	res, err := astar.Search(g, cell(0, 0), cell(0, 0))
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Length)
	require.Equal(s.T(), []gridgraph.Cell{cell(0, 0)}, res.Path)
	require.Equal(s.T(), 1, res.Marks.Count(route.Start))
	require.Equal(s.T(), 1, res.Visited)
}

// TestStraightLineIsFocused checks that on an open image the heuristic keeps
// the search on the straight line between the endpoints.
func (s *SearchSuite) TestStraightLineIsFocused() {
	rows := make([]string, 10)
	for i := range rows {
		rows[i] = ".........."
	}
	g := maze(s.T(), rows...)
	res, err := astar.Search(g, cell(0, 5), cell(9, 5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, res.Length)
	require.Equal(s.T(), 10, res.Visited)
	require.Zero(s.T(), res.Marks.Count(route.Explored))
	require.Equal(s.T(), 9, res.Marks.Count(route.Path))
}

// TestExploredMarksSkipEndpoints: when the search visits cells off the final
// path, they are Explored while start and dest keep their own marks.
func (s *SearchSuite) TestExploredMarksSkipEndpoints() {
	g := maze(s.T(),
		"....",
		".##.",
		"....",
	)
	res, err := astar.Search(g, cell(0, 1), cell(3, 1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, res.Length)
	require.Equal(s.T(), route.Start, res.Marks.At(g.Index(cell(0, 1))))
	require.Equal(s.T(), route.Path, res.Marks.At(g.Index(cell(3, 1))))
	require.Equal(s.T(), res.Visited-1-res.Length, res.Marks.Count(route.Explored))
}

// TestZeroHeuristic degenerates to Dijkstra and must agree on length.
func (s *SearchSuite) TestZeroHeuristic() {
	g := maze(s.T(),
		".....",
		"###..",
		"...#.",
		".#...",
	)
	a, err := astar.Search(g, cell(0, 0), cell(0, 3))
	require.NoError(s.T(), err)
	z, err := astar.Search(g, cell(0, 0), cell(0, 3),
		astar.WithHeuristic(func(gridgraph.Cell, gridgraph.Cell) int { return 0 }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 13, a.Length)
	require.Equal(s.T(), a.Length, z.Length)
}

// TestEachCellProcessedOnce uses the visit hook on random images: a cell may
// be pushed many times but must be finalized at most once.
func (s *SearchSuite) TestEachCellProcessedOnce() {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		rows := make([]string, 12)
		for y := range rows {
			b := make([]byte, 12)
			for x := range b {
				b[x] = '.'
				if rng.Intn(10) < 3 {
					b[x] = '#'
				}
			}
			rows[y] = string(b)
		}
		g := maze(s.T(), rows...)
		seen := map[gridgraph.Cell]int{}
		_, _ = astar.Search(g, cell(rng.Intn(12), rng.Intn(12)), cell(rng.Intn(12), rng.Intn(12)),
			astar.WithOnVisit(func(c gridgraph.Cell, _ int) error {
				seen[c]++
				return nil
			}))
		for c, n := range seen {
			require.Equal(s.T(), 1, n, "trial %d: cell %v processed %d times", trial, c, n)
		}
	}
}

// TestCancellation verifies that a cancelled context halts the search.
func (s *SearchSuite) TestCancellation() {
	g := maze(s.T(), "........")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(g, cell(0, 0), cell(7, 0), astar.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestHookError aborts and wraps the hook's error.
func (s *SearchSuite) TestHookError() {
	g := maze(s.T(), "....")
	boom := errors.New("boom")
	_, err := astar.Search(g, cell(0, 0), cell(3, 0),
		astar.WithOnVisit(func(c gridgraph.Cell, _ int) error {
			if c == cell(2, 0) {
				return boom
			}
			return nil
		}))
	require.ErrorIs(s.T(), err, boom)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}
