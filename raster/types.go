package raster

import (
	"errors"
	"fmt"
)

// Sentinel errors for raster operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: grid must have positive width and height")

	// ErrUnknownFormat indicates a file extension with no registered codec.
	ErrUnknownFormat = errors.New("raster: unknown image format")
)

// RGB is a single pixel colour. Alpha is not modelled; decoded images are
// flattened onto their colour channels.
type RGB struct {
	R, G, B uint8
}

// String renders the colour as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Format selects an image codec.
type Format int

const (
	// FormatBMP is the default output format.
	FormatBMP Format = iota
	// FormatPNG writes lossless PNG.
	FormatPNG
)

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatBMP:
		return "bmp"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Grid is a mutable Width×Height pixel buffer in row-major order.
// The zero value is not usable; construct with New or FromImage.
type Grid struct {
	Width, Height int
	Pix           []RGB
}
