package raster

import (
	"image"
	"image/color"
)

// New allocates a black w×h grid.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: w, Height: h, Pix: make([]RGB, w*h)}, nil
}

// Fill builds a w×h grid where every pixel is c.
func Fill(w, h int, c RGB) (*Grid, error) {
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.Pix {
		g.Pix[i] = c
	}

	return g, nil
}

// InBounds reports whether (x,y) addresses a pixel of g.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the pixel at (x,y). The caller must ensure InBounds(x,y).
func (g *Grid) At(x, y int) RGB {
	return g.Pix[y*g.Width+x]
}

// Set overwrites the pixel at (x,y). The caller must ensure InBounds(x,y).
func (g *Grid) Set(x, y int, c RGB) {
	g.Pix[y*g.Width+x] = c
}

// Size returns the grid dimensions.
func (g *Grid) Size() (w, h int) {
	return g.Width, g.Height
}

// RGB returns the channels of the pixel at (x,y).
func (g *Grid) RGB(x, y int) (uint8, uint8, uint8) {
	c := g.Pix[y*g.Width+x]

	return c.R, c.G, c.B
}

// Clone returns a deep copy of g; mutations of either never affect the other.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	pix := make([]RGB, len(g.Pix))
	copy(pix, g.Pix)

	return &Grid{Width: g.Width, Height: g.Height, Pix: pix}
}

// FromImage copies img into a new Grid. Pixel (0,0) of the grid is the
// top-left corner of img.Bounds(), whatever its origin.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			g.Pix[y*g.Width+x] = RGB{R: c.R, G: c.G, B: c.B}
		}
	}

	return g, nil
}

// Image renders g as an opaque *image.RGBA.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Pix[y*g.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return img
}
