package noise

// Fractal layers octaves of a source field, each octave at Lacunarity times
// the previous frequency and Persistence times the previous amplitude. The
// sum is normalized by the total amplitude so the nominal [-1, 1] range is
// preserved regardless of octave count.
type Fractal struct {
	Source      Sampler
	Octaves     int
	Lacunarity  float64
	Persistence float64
}

// NewFractal wraps src with the conventional defaults: lacunarity 2,
// persistence 0.5.
func NewFractal(src Sampler, octaves int) *Fractal {
	return &Fractal{
		Source:      src,
		Octaves:     octaves,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Sample accumulates the octaves at (x, y, z). Zero or negative Octaves
// yields 0.
func (f *Fractal) Sample(x, y, z float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < f.Octaves; i++ {
		sum += f.Source.Sample(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= f.Persistence
		freq *= f.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
