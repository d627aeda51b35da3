package raster_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixpath/raster"
)

func checker(t *testing.T) *raster.Grid {
	t.Helper()
	g, err := raster.New(4, 3)
	require.NoError(t, err)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, raster.RGB{R: 255, G: 128, B: 0})
			}
		}
	}

	return g
}

// TestEncodeDecode_Formats verifies that both codecs preserve every pixel.
func TestEncodeDecode_Formats(t *testing.T) {
	for _, f := range []raster.Format{raster.FormatBMP, raster.FormatPNG} {
		t.Run(f.String(), func(t *testing.T) {
			src := checker(t)
			var buf bytes.Buffer
			require.NoError(t, raster.Encode(&buf, src, f))

			got, err := raster.Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, src, got)
		})
	}
}

// TestEncode_UnknownFormat rejects formats without a codec.
func TestEncode_UnknownFormat(t *testing.T) {
	err := raster.Encode(&bytes.Buffer{}, checker(t), raster.Format(42))
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
}

// TestDecode_Garbage surfaces codec failures as errors.
func TestDecode_Garbage(t *testing.T) {
	_, err := raster.Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

// TestSaveLoad round-trips through the filesystem and checks path handling.
func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := checker(t)

	path := raster.WithDefaultExt(filepath.Join(dir, "out"))
	require.Equal(t, ".bmp", filepath.Ext(path))
	require.NoError(t, raster.Save(path, src))

	got, err := raster.Load(path)
	require.NoError(t, err)
	require.Equal(t, src, got)

	// unknown extension: nothing is written
	bad := filepath.Join(dir, "out.gif")
	require.ErrorIs(t, raster.Save(bad, src), raster.ErrUnknownFormat)
	_, statErr := os.Stat(bad)
	require.True(t, errors.Is(statErr, os.ErrNotExist))

	_, err = raster.Load(filepath.Join(dir, "missing.bmp"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestFormatFromPath covers extension matching.
func TestFormatFromPath(t *testing.T) {
	cases := map[string]raster.Format{
		"a.bmp":     raster.FormatBMP,
		"A.BMP":     raster.FormatBMP,
		"dir/b.png": raster.FormatPNG,
	}
	for path, want := range cases {
		got, err := raster.FormatFromPath(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}
	_, err := raster.FormatFromPath("noext")
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
	require.Equal(t, "keep.png", raster.WithDefaultExt("keep.png"))
}
