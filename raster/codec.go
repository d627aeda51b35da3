package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// FormatFromPath picks the codec for path from its extension (case-insensitive).
// Returns ErrUnknownFormat for anything other than .bmp or .png.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP, nil
	case ".png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// WithDefaultExt appends ".bmp" when path has no extension.
func WithDefaultExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + "." + FormatBMP.String()
	}

	return path
}

// Decode reads a BMP or PNG image from r.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}

	return FromImage(img)
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *Grid, f Format) error {
	var err error
	switch f {
	case FormatBMP:
		err = bmp.Encode(w, g.Image())
	case FormatPNG:
		err = png.Encode(w, g.Image())
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %v: %w", f, err)
	}

	return nil
}

// Load opens and decodes the image at path.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}

	return g, nil
}

// Save encodes g to path, choosing the format from its extension.
// A file is only created once the format is known.
func Save(path string, g *Grid) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close %q: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = Encode(bw, g, format); err != nil {
		return err
	}

	return bw.Flush()
}
