package noise

import (
	"math"

	"noise-go/pkg/permtable"
)

// Perlin is classic gradient noise over the integer lattice: each corner's
// hash selects a gradient, corner contributions are the dot products with
// the offset from the corner, and the eight contributions blend under the
// quintic fade. Output is 0 exactly at lattice points.
type Perlin struct {
	h permtable.Hasher
}

// NewPerlin returns gradient noise backed by the permutation table for
// seed.
func NewPerlin(seed uint32) *Perlin {
	t := permtable.New(seed)
	return &Perlin{h: &t}
}

// NewPerlinHasher returns gradient noise over a caller-supplied hashing
// substrate.
func NewPerlinHasher(h permtable.Hasher) *Perlin {
	return &Perlin{h: h}
}

// Sample evaluates the field at (x, y, z).
func (p *Perlin) Sample(x, y, z float64) float64 {
	xf, yf, zf := math.Floor(x), math.Floor(y), math.Floor(z)
	xi, yi, zi := int(xf), int(yf), int(zf)
	xr, yr, zr := x-xf, y-yf, z-zf

	u, v, w := fade(xr), fade(yr), fade(zr)

	c000 := grad(p.h.Hash(xi, yi, zi), xr, yr, zr)
	c100 := grad(p.h.Hash(xi+1, yi, zi), xr-1, yr, zr)
	c010 := grad(p.h.Hash(xi, yi+1, zi), xr, yr-1, zr)
	c110 := grad(p.h.Hash(xi+1, yi+1, zi), xr-1, yr-1, zr)
	c001 := grad(p.h.Hash(xi, yi, zi+1), xr, yr, zr-1)
	c101 := grad(p.h.Hash(xi+1, yi, zi+1), xr-1, yr, zr-1)
	c011 := grad(p.h.Hash(xi, yi+1, zi+1), xr, yr-1, zr-1)
	c111 := grad(p.h.Hash(xi+1, yi+1, zi+1), xr-1, yr-1, zr-1)

	return lerp(
		lerp(lerp(c000, c100, u), lerp(c010, c110, u), v),
		lerp(lerp(c001, c101, u), lerp(c011, c111, u), v),
		w,
	)
}

// grad selects one of the improved-noise gradient directions from the low
// four hash bits and returns its dot product with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := z
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
