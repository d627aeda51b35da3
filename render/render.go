package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixpath/raster"
	"github.com/katalvlaran/pixpath/route"
)

var (
	// ErrSizeMismatch indicates marks and raster have different dimensions.
	ErrSizeMismatch = errors.New("render: marks and raster sizes differ")

	// ErrDarkColour indicates a palette colour that would make a cell look non-traversable.
	ErrDarkColour = errors.New("render: palette colour has no channel above threshold")
)

// Palette maps each visible mark to a colour.
type Palette struct {
	Start    raster.RGB
	Explored raster.RGB
	Path     raster.RGB
}

// DefaultPalette returns blue start, green explored and red path.
func DefaultPalette() Palette {
	return Palette{
		Start:    raster.RGB{B: 255},
		Explored: raster.RGB{G: 255},
		Path:     raster.RGB{R: 255},
	}
}

// Colour returns the colour for m and false for route.None.
func (p Palette) Colour(m route.Mark) (raster.RGB, bool) {
	switch m {
	case route.Start:
		return p.Start, true
	case route.Explored:
		return p.Explored, true
	case route.Path:
		return p.Path, true
	default:
		return raster.RGB{}, false
	}
}

// Validate rejects colours with every channel <= threshold: painting them
// would turn walkable cells into walls for anyone re-reading the output.
func (p Palette) Validate(threshold uint8) error {
	for _, e := range []struct {
		name string
		c    raster.RGB
	}{{"start", p.Start}, {"explored", p.Explored}, {"path", p.Path}} {
		if e.c.R <= threshold && e.c.G <= threshold && e.c.B <= threshold {
			return fmt.Errorf("%w: %s %v (threshold %d)", ErrDarkColour, e.name, e.c, threshold)
		}
	}

	return nil
}

// Paint overwrites every marked pixel of dst with its palette colour.
// Unmarked pixels are left as they are.
func Paint(dst *raster.Grid, marks *route.Marks, p Palette) error {
	if dst.Width != marks.Width || dst.Height != marks.Height {
		return fmt.Errorf("%w: raster %dx%d, marks %dx%d",
			ErrSizeMismatch, dst.Width, dst.Height, marks.Width, marks.Height)
	}
	for i := 0; i < marks.Len(); i++ {
		if c, ok := p.Colour(marks.At(i)); ok {
			dst.Pix[i] = c
		}
	}

	return nil
}
