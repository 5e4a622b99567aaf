package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"noise-go/pkg/mapbuild"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestGrayscaleEndpoints(t *testing.T) {
	p := Grayscale()
	if !sameColor(p.At(0), color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("Expected black at 0, got %v", p.At(0))
	}
	if !sameColor(p.At(1), color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white at 1, got %v", p.At(1))
	}
	if !sameColor(p.At(0.5), color.NRGBA{128, 128, 128, 255}) {
		t.Errorf("Expected mid gray at 0.5, got %v", p.At(0.5))
	}
}

func TestGradientClamps(t *testing.T) {
	p := Terrain()
	if !sameColor(p.At(-3), p.At(0)) {
		t.Error("Expected values below 0 to clamp to the first stop")
	}
	if !sameColor(p.At(9), p.At(1)) {
		t.Error("Expected values above 1 to clamp to the last stop")
	}
}

func TestNewGradientValidation(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	if _, err := NewGradient(Stop{0, black}); err == nil {
		t.Error("Expected an error for a single stop")
	}
	if _, err := NewGradient(Stop{0.5, black}, Stop{0.2, white}); err == nil {
		t.Error("Expected an error for decreasing positions")
	}
	if _, err := NewGradient(Stop{0, black}, Stop{1.5, white}); err == nil {
		t.Error("Expected an error for a position outside [0, 1]")
	}
	if _, err := NewGradient(Stop{0, black}, Stop{1, white}); err != nil {
		t.Errorf("Expected two valid stops to build, got %v", err)
	}
}

func TestTerrainShape(t *testing.T) {
	p := Terrain()
	r, g, b, _ := p.At(0).RGBA()
	if b <= r || b <= g {
		t.Errorf("Expected the low end to be water blue, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
	if !sameColor(p.At(1), color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Expected snow white at 1, got %v", p.At(1))
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"", "gray", "grayscale", "terrain"} {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("Expected %q to resolve, got %v", name, err)
		}
	}
	if _, err := PaletteByName("plasma"); err == nil {
		t.Error("Expected an error for an unknown palette")
	}
}

func TestRendererNormalizes(t *testing.T) {
	g := mapbuild.NewGrid(2, 1)
	g.Set(0, 0, 3)
	g.Set(1, 0, 5)
	img := NewRenderer(Grayscale()).Image(g)
	if !sameColor(img.At(0, 0), color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("Expected the minimum to render black, got %v", img.At(0, 0))
	}
	if !sameColor(img.At(1, 0), color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Expected the maximum to render white, got %v", img.At(1, 0))
	}
}

func TestRendererFlatGrid(t *testing.T) {
	g := mapbuild.NewGrid(2, 2)
	for i := range g.Values {
		g.Values[i] = 7
	}
	img := NewRenderer(nil).Image(g)
	mid := Grayscale().At(0.5)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if !sameColor(img.At(x, y), mid) {
				t.Fatalf("Expected the palette midpoint at (%d,%d), got %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	g := mapbuild.NewGrid(8, 8)
	for i := range g.Values {
		g.Values[i] = float64(i)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := NewRenderer(Terrain()).SavePNG(g, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening the written file failed: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding the written PNG failed: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected an 8x8 image, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
