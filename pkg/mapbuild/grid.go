// Package mapbuild samples noise fields into planar rasters and encodes
// the resulting grids for storage. A Builder walks an axis-aligned window
// of the x/y plane at a fixed z, filling a row-major Grid with bounded
// worker parallelism; the codec frames a grid with a small header and runs
// the payload through a transform pipeline.
package mapbuild

// Grid is a row-major float64 raster: the value at (x, y) lives at index
// y*W + x. Grid is plain storage with no synchronization of its own.
type Grid struct {
	W, H   int
	Values []float64
}

// NewGrid allocates a zeroed W by H grid.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Values: make([]float64, w*h)}
}

// Index converts grid coordinates to the flat index.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y).
func (g *Grid) At(x, y int) float64 { return g.Values[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.Values[y*g.W+x] = v }

// Row returns the backing slice for row y. Writes through it mutate the
// grid.
func (g *Grid) Row(y int) []float64 { return g.Values[y*g.W : (y+1)*g.W] }

// MinMax scans the grid and returns its extremes. An empty grid reports
// (0, 0).
func (g *Grid) MinMax() (min, max float64) {
	if len(g.Values) == 0 {
		return 0, 0
	}
	min, max = g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
