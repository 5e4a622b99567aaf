package profile

import (
	"fmt"

	"noise-go/pkg/combine"
	"noise-go/pkg/mapbuild"
	"noise-go/pkg/noise"
	"noise-go/pkg/render"
	"noise-go/pkg/seed"
)

// ResolveSeed returns the profile's effective seed: the explicit value,
// overridden by the one derived from seed_name when that is set.
func (p Profile) ResolveSeed() uint32 {
	if p.SeedName != "" {
		return seed.Derive(p.SeedName)
	}
	return p.Seed
}

// Sampler materializes the profile's field: the base kind, octave layering
// when octaves is above 1 and a frequency scale when frequency is not 1.
func (p Profile) Sampler() (noise.Sampler, error) {
	p = p.Normalized()
	var src noise.Sampler
	switch p.Kind {
	case "perlin":
		src = noise.NewPerlin(p.ResolveSeed())
	case "value":
		src = noise.NewValue(p.ResolveSeed())
	case "cylinders":
		src = noise.NewCylinders()
	default:
		return nil, fmt.Errorf("profile: unknown noise kind %q", p.Kind)
	}
	if p.Octaves > 1 {
		f := noise.NewFractal(src, p.Octaves)
		f.Lacunarity = p.Lacunarity
		f.Persistence = p.Persistence
		src = f
	}
	if p.Frequency != 1 {
		src = combine.NewScalePoint(src, p.Frequency)
	}
	return src, nil
}

// Builder materializes the profile's sampling window over src.
func (p Profile) Builder(src noise.Sampler) *mapbuild.Builder {
	p = p.Normalized()
	b := mapbuild.NewBuilder(src).
		SetSize(p.Width, p.Height).
		SetBounds(p.XLo, p.XHi, p.YLo, p.YHi).
		SetZ(p.Z)
	if p.Workers > 0 {
		b.SetWorkers(p.Workers)
	}
	return b
}

// Renderer materializes the profile's palette.
func (p Profile) Renderer() (*render.Renderer, error) {
	pal, err := render.PaletteByName(p.Normalized().Palette)
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(pal), nil
}
