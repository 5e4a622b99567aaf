package noise

import (
	"math"
	"testing"

	"noise-go/pkg/permtable"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var probePoints = [][3]float64{
	{0.5, 0.5, 0.5},
	{1.3, -2.7, 0.1},
	{-0.25, 4.75, -3.5},
	{10.01, 0.99, -7.3},
	{123.456, -654.321, 42.42},
}

func TestPerlinDeterministic(t *testing.T) {
	a, b := NewPerlin(7), NewPerlin(7)
	for _, p := range probePoints {
		va, vb := a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2])
		if va != vb {
			t.Errorf("point %v: expected identical samples, got %g vs %g", p, va, vb)
		}
	}
}

func TestPerlinSeedSensitivity(t *testing.T) {
	a, b := NewPerlin(0), NewPerlin(1)
	differs := false
	for _, p := range probePoints {
		if a.Sample(p[0], p[1], p[2]) != b.Sample(p[0], p[1], p[2]) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("seeds 0 and 1 agree at every probe point")
	}
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	p := NewPerlin(4242)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for z := -3; z <= 3; z++ {
				if v := p.Sample(float64(x), float64(y), float64(z)); v != 0 {
					t.Fatalf("expected 0 at lattice point (%d,%d,%d), got %g", x, y, z, v)
				}
			}
		}
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(1)
	for x := -2.0; x < 2.0; x += 0.137 {
		for y := -2.0; y < 2.0; y += 0.173 {
			for z := -2.0; z < 2.0; z += 0.191 {
				if v := p.Sample(x, y, z); math.Abs(v) > 1.1 {
					t.Fatalf("sample at (%g,%g,%g) out of nominal range: %g", x, y, z, v)
				}
			}
		}
	}
}

func TestPerlinContinuity(t *testing.T) {
	p := NewPerlin(99)
	const step = 1e-4
	// Walk across a lattice boundary; the quintic fade keeps the field
	// smooth there.
	for x := 0.99; x < 1.01; x += step {
		a := p.Sample(x, 0.4, 0.6)
		b := p.Sample(x+step, 0.4, 0.6)
		if math.Abs(a-b) > 0.05 {
			t.Fatalf("discontinuity near x=%g: %g vs %g", x, a, b)
		}
	}
}

func TestPerlinHasherSubstitution(t *testing.T) {
	tbl := permtable.New(7)
	a := NewPerlin(7)
	b := NewPerlinHasher(&tbl)
	for _, p := range probePoints {
		va, vb := a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2])
		if va != vb {
			t.Errorf("point %v: table-backed and seed-backed samples differ: %g vs %g", p, va, vb)
		}
	}
}

// flatHasher hashes every coordinate to the same value.
type flatHasher struct{ v int }

func (f flatHasher) Hash(index ...int) int { return f.v }

func TestValueFlatSubstrate(t *testing.T) {
	// With a constant hash every corner carries the same value, so the
	// blended field is constant too.
	n := NewValueHasher(flatHasher{v: 200})
	want := 200/127.5 - 1
	for _, p := range probePoints {
		if v := n.Sample(p[0], p[1], p[2]); !almostEqual(v, want, 1e-12) {
			t.Errorf("point %v: expected %g, got %g", p, want, v)
		}
	}
}

func TestValueRange(t *testing.T) {
	n := NewValue(3)
	for x := -2.0; x < 2.0; x += 0.137 {
		for z := -2.0; z < 2.0; z += 0.191 {
			if v := n.Sample(x, 0.5, z); v < -1 || v > 1 {
				t.Fatalf("sample at (%g,0.5,%g) out of range: %g", x, z, v)
			}
		}
	}
}

func TestValueLatticePointsCarryCornerValues(t *testing.T) {
	tbl := permtable.New(11)
	n := NewValueHasher(&tbl)
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			want := float64(tbl.Hash(x, y, 0))/127.5 - 1
			if got := n.Sample(float64(x), float64(y), 0); !almostEqual(got, want, 1e-12) {
				t.Fatalf("lattice point (%d,%d,0): expected %g, got %g", x, y, want, got)
			}
		}
	}
}

func TestCylinders(t *testing.T) {
	c := NewCylinders()
	cases := []struct {
		x, y, z float64
		want    float64
	}{
		{0, 0, 0, 1},
		{0, 17.5, 0, 1},   // y never contributes
		{1, 0, 0, 1},      // on the first shell
		{0.5, 0, 0, -1},   // halfway between shells
		{0, 0, 2.5, -1},   // axis symmetric
		{0.25, 0, 0, 0},   // quarter of the way out
		{3, 0, 4, 1},      // 3-4-5 triangle lands on the fifth shell
	}
	for _, tc := range cases {
		if got := c.Sample(tc.x, tc.y, tc.z); !almostEqual(got, tc.want, 1e-9) {
			t.Errorf("Sample(%g,%g,%g): expected %g, got %g", tc.x, tc.y, tc.z, tc.want, got)
		}
	}
}

func TestCylindersFrequency(t *testing.T) {
	c := &Cylinders{Frequency: 2}
	// Frequency 2 halves the shell spacing: 0.25 lands mid-shell.
	if got := c.Sample(0.25, 0, 0); !almostEqual(got, -1, 1e-9) {
		t.Errorf("expected -1 at scaled midpoint, got %g", got)
	}
}

func TestFractalSingleOctaveMatchesSource(t *testing.T) {
	src := NewPerlin(5)
	f := NewFractal(src, 1)
	for _, p := range probePoints {
		if got, want := f.Sample(p[0], p[1], p[2]), src.Sample(p[0], p[1], p[2]); got != want {
			t.Errorf("point %v: expected %g, got %g", p, want, got)
		}
	}
}

func TestFractalNormalized(t *testing.T) {
	f := NewFractal(NewPerlin(8), 5)
	for x := -2.0; x < 2.0; x += 0.211 {
		for z := -2.0; z < 2.0; z += 0.223 {
			if v := f.Sample(x, 0.3, z); math.Abs(v) > 1.1 {
				t.Fatalf("octave sum at (%g,0.3,%g) out of nominal range: %g", x, z, v)
			}
		}
	}
}

func TestFractalNoOctaves(t *testing.T) {
	f := NewFractal(NewPerlin(8), 0)
	if v := f.Sample(0.5, 0.5, 0.5); v != 0 {
		t.Errorf("expected 0 with no octaves, got %g", v)
	}
}

func BenchmarkPerlinSample(b *testing.B) {
	p := NewPerlin(1337)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Sample(float64(i&1023)*0.017, 0.3, 0.7)
	}
}

func BenchmarkFractalSample(b *testing.B) {
	f := NewFractal(NewPerlin(1337), 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Sample(float64(i&1023)*0.017, 0.3, 0.7)
	}
}
