package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pixpath/astar"
	"github.com/katalvlaran/pixpath/gridgraph"
	"github.com/katalvlaran/pixpath/raster"
)

// BenchmarkSearch_Open measures corner-to-corner A* on an open 512×512 image.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 512
	img, _ := raster.Fill(n, n, raster.RGB{R: 255, G: 255, B: 255})
	g, _ := gridgraph.New(img, gridgraph.DefaultGridOptions())
	start, dest := gridgraph.Cell{}, gridgraph.Cell{X: n - 1, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, dest)
	}
}

// BenchmarkSearch_Noise runs A* across a 512×512 image with ~25% dark pixels.
func BenchmarkSearch_Noise(b *testing.B) {
	const n = 512
	rng := rand.New(rand.NewSource(7))
	img, _ := raster.Fill(n, n, raster.RGB{R: 255, G: 255, B: 255})
	for i := range img.Pix {
		if rng.Intn(4) == 0 {
			img.Pix[i] = raster.RGB{}
		}
	}
	start, dest := gridgraph.Cell{}, gridgraph.Cell{X: n - 1, Y: n - 1}
	img.Set(start.X, start.Y, raster.RGB{R: 255})
	img.Set(dest.X, dest.Y, raster.RGB{R: 255})
	g, _ := gridgraph.New(img, gridgraph.DefaultGridOptions())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, dest)
	}
}
