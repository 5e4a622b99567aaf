package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"noise-go/pkg/mapbuild"
)

// Renderer rasterizes grids with a fixed palette. Samples are normalized
// by the grid's own extremes, so the full palette range is always used; a
// flat grid renders as the palette midpoint.
type Renderer struct {
	palette Palette
}

// NewRenderer returns a renderer over p. A nil palette falls back to
// Grayscale.
func NewRenderer(p Palette) *Renderer {
	if p == nil {
		p = Grayscale()
	}
	return &Renderer{palette: p}
}

func (r *Renderer) draw(g *mapbuild.Grid) *gg.Context {
	dc := gg.NewContext(g.W, g.H)
	min, max := g.MinMax()
	span := max - min
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t := 0.5
			if span > 0 {
				t = (g.At(x, y) - min) / span
			}
			dc.SetColor(r.palette.At(t))
			dc.SetPixel(x, y)
		}
	}
	return dc
}

// Image rasterizes g into an in-memory image.
func (r *Renderer) Image(g *mapbuild.Grid) image.Image {
	return r.draw(g).Image()
}

// EncodePNG rasterizes g and writes it to w as PNG.
func (r *Renderer) EncodePNG(g *mapbuild.Grid, w io.Writer) error {
	return r.draw(g).EncodePNG(w)
}

// SavePNG rasterizes g and writes it to path as PNG.
func (r *Renderer) SavePNG(g *mapbuild.Grid, path string) error {
	return r.draw(g).SavePNG(path)
}
