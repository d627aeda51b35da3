package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/render"
	"github.com/katalvlaran/pixpath/route"
)

// TestPaint writes each mark's colour and leaves unmarked pixels alone.
func TestPaint(t *testing.T) {
	grey := raster.RGB{R: 150, G: 150, B: 150}
	img, err := raster.Fill(2, 2, grey)
	require.NoError(t, err)

	ms := route.NewMarks(2, 2)
	ms.Set(0, route.Start)
	ms.Set(1, route.Explored)
	ms.Set(2, route.Path)

	p := render.DefaultPalette()
	require.NoError(t, render.Paint(img, ms, p))
	require.Equal(t, []raster.RGB{p.Start, p.Explored, p.Path, grey}, img.Pix)
}

// TestPaint_SizeMismatch refuses to paint a layer of the wrong shape.
func TestPaint_SizeMismatch(t *testing.T) {
	img, _ := raster.New(2, 2)
	err := render.Paint(img, route.NewMarks(2, 3), render.DefaultPalette())
	require.ErrorIs(t, err, render.ErrSizeMismatch)
}

// TestPalette_Validate flags colours that would read back as walls.
func TestPalette_Validate(t *testing.T) {
	require.NoError(t, render.DefaultPalette().Validate(100))

	p := render.DefaultPalette()
	p.Explored = raster.RGB{R: 100, G: 100, B: 100}
	require.ErrorIs(t, p.Validate(100), render.ErrDarkColour)
	require.NoError(t, p.Validate(99))

	_, ok := p.Colour(route.None)
	require.False(t, ok)
}
