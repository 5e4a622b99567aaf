// Package noise evaluates coherent noise fields over R^3. Every source
// implements Sampler and returns values nominally in [-1, 1]; gradient and
// value noise draw their per-corner randomness from a permtable.Hasher, so
// fields built from the same seed agree across platforms and runs.
package noise

// Sampler is a coherent noise field. Sampling must be deterministic, free
// of side effects and safe for concurrent use.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at 0 and 1, which keeps lattice seams invisible.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
