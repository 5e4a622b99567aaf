// Package render turns sampled grids into images. A Palette maps a
// normalized sample in [0, 1] to a color; the Renderer normalizes a grid by
// its extremes and rasterizes it one pixel per sample.
package render

import (
	"fmt"
	"image/color"
	"math"

	"noise-go/internal/fn"
)

// Palette maps a normalized sample in [0, 1] to a color.
type Palette interface {
	At(t float64) color.Color
}

// Stop anchors a gradient color at a position in [0, 1].
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Gradient interpolates linearly between ordered color stops. Inputs
// outside [0, 1] clamp to the edge stops.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from at least two stops with strictly
// increasing positions in [0, 1].
func NewGradient(stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("render: gradient needs at least 2 stops, got %d", len(stops))
	}
	for i, s := range stops {
		if s.Pos < 0 || s.Pos > 1 {
			return nil, fmt.Errorf("render: stop %d position %g outside [0, 1]", i, s.Pos)
		}
		if i > 0 && s.Pos <= stops[i-1].Pos {
			return nil, fmt.Errorf("render: stop positions must increase, stop %d at %g", i, s.Pos)
		}
	}
	return &Gradient{stops: append([]Stop(nil), stops...)}, nil
}

// At returns the interpolated color at t.
func (g *Gradient) At(t float64) color.Color {
	t = fn.Clamp(t, 0, 1)
	if t <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	i := 1
	for g.stops[i].Pos < t {
		i++
	}
	lo, hi := g.stops[i-1], g.stops[i]
	u := (t - lo.Pos) / (hi.Pos - lo.Pos)
	return color.NRGBA{
		R: mix(lo.Color.R, hi.Color.R, u),
		G: mix(lo.Color.G, hi.Color.G, u),
		B: mix(lo.Color.B, hi.Color.B, u),
		A: mix(lo.Color.A, hi.Color.A, u),
	}
}

func mix(a, b uint8, u float64) uint8 {
	return uint8(math.Round(float64(a) + u*(float64(b)-float64(a))))
}

// Grayscale maps 0 to black and 1 to white.
func Grayscale() *Gradient {
	return &Gradient{stops: []Stop{
		{0, color.NRGBA{0, 0, 0, 255}},
		{1, color.NRGBA{255, 255, 255, 255}},
	}}
}

// Terrain is a topographic palette: deep water up through shoreline,
// vegetation, bare rock and snow.
func Terrain() *Gradient {
	return &Gradient{stops: []Stop{
		{0.00, color.NRGBA{0, 0, 128, 255}},
		{0.40, color.NRGBA{0, 96, 224, 255}},
		{0.50, color.NRGBA{240, 224, 96, 255}},
		{0.60, color.NRGBA{32, 160, 0, 255}},
		{0.75, color.NRGBA{96, 112, 64, 255}},
		{0.88, color.NRGBA{128, 128, 128, 255}},
		{1.00, color.NRGBA{255, 255, 255, 255}},
	}}
}

// PaletteByName resolves the built-in palettes.
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "", "gray", "grayscale":
		return Grayscale(), nil
	case "terrain":
		return Terrain(), nil
	}
	return nil, fmt.Errorf("render: unknown palette %q", name)
}
