// Package benchmark measures sampling throughput of the noise stack, from
// the raw permutation fold up to full map builds, with the go-perlin
// library as an external reference point.
package benchmark

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aquilax/go-perlin"

	"noise-go/pkg/mapbuild"
	"noise-go/pkg/noise"
	"noise-go/pkg/permtable"
)

// Component specifies which part of the stack to benchmark.
type Component int

const (
	ComponentHash      Component = iota // permutation-table coordinate fold
	ComponentPerlin                     // gradient noise sampling
	ComponentValue                      // value noise sampling
	ComponentFractal                    // four perlin octaves
	ComponentMapBuild                   // parallel grid build
	ComponentReference                  // go-perlin library, for comparison
)

func (c Component) String() string {
	switch c {
	case ComponentHash:
		return "Permutation Hash"
	case ComponentPerlin:
		return "Perlin Sampler"
	case ComponentValue:
		return "Value Sampler"
	case ComponentFractal:
		return "Fractal 4-Octave"
	case ComponentMapBuild:
		return "Map Builder"
	case ComponentReference:
		return "Reference go-perlin"
	default:
		return "Unknown"
	}
}

// Options configures a benchmark run.
type Options struct {
	Component  Component
	Iterations int
	Seed       uint32
	Width      int // map build raster
	Height     int
	Workers    int // 0 means one per CPU
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Component:  ComponentPerlin,
		Iterations: 1_000_000,
		Seed:       1337,
		Width:      512,
		Height:     512,
	}
}

// Results holds the outcome of one benchmark run. Checksum accumulates the
// sampled values; it keeps the measured loop live and doubles as a
// determinism witness across runs.
type Results struct {
	Component     Component
	Samples       int
	TotalTime     time.Duration
	NsPerSample   float64
	SamplesPerSec float64
	Checksum      float64
}

// Run executes the benchmark selected by opts.
func Run(opts *Options) (*Results, error) {
	switch opts.Component {
	case ComponentHash:
		return benchmarkHash(opts)
	case ComponentPerlin:
		return benchmarkSampler(opts, noise.NewPerlin(opts.Seed))
	case ComponentValue:
		return benchmarkSampler(opts, noise.NewValue(opts.Seed))
	case ComponentFractal:
		return benchmarkSampler(opts, noise.NewFractal(noise.NewPerlin(opts.Seed), 4))
	case ComponentMapBuild:
		return benchmarkMapBuild(opts)
	case ComponentReference:
		return benchmarkReference(opts)
	default:
		return nil, fmt.Errorf("unknown component: %d", opts.Component)
	}
}

// sampleAt spreads iteration indices over a deterministic cloud of
// coordinates so every run touches the same points.
func sampleAt(i int) (x, y, z float64) {
	x = float64(i&1023) * 0.017
	y = float64((i>>10)&1023) * 0.013
	z = float64(i&255) * 0.011
	return x, y, z
}

func benchmarkHash(opts *Options) (*Results, error) {
	table := permtable.New(opts.Seed)
	var sum int
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		sum += table.Hash(i, i>>3, i>>6)
	}
	return newResults(opts.Component, opts.Iterations, time.Since(start), float64(sum)), nil
}

func benchmarkSampler(opts *Options, src noise.Sampler) (*Results, error) {
	var sum float64
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		x, y, z := sampleAt(i)
		sum += src.Sample(x, y, z)
	}
	return newResults(opts.Component, opts.Iterations, time.Since(start), sum), nil
}

func benchmarkMapBuild(opts *Options) (*Results, error) {
	b := mapbuild.NewBuilder(noise.NewPerlin(opts.Seed)).
		SetSize(opts.Width, opts.Height).
		SetBounds(-4, 4, -4, 4)
	if opts.Workers > 0 {
		b.SetWorkers(opts.Workers)
	}
	start := time.Now()
	grid, err := b.Build(context.Background())
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	var sum float64
	for _, v := range grid.Values {
		sum += v
	}
	return newResults(opts.Component, len(grid.Values), elapsed, sum), nil
}

func benchmarkReference(opts *Options) (*Results, error) {
	p := perlin.NewPerlin(2, 2, 3, int64(opts.Seed))
	var sum float64
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		x, y, _ := sampleAt(i)
		sum += p.Noise2D(x, y)
	}
	return newResults(opts.Component, opts.Iterations, time.Since(start), sum), nil
}

func newResults(c Component, samples int, elapsed time.Duration, checksum float64) *Results {
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return &Results{
		Component:     c,
		Samples:       samples,
		TotalTime:     elapsed,
		NsPerSample:   float64(elapsed.Nanoseconds()) / float64(samples),
		SamplesPerSec: float64(samples) / elapsed.Seconds(),
		Checksum:      checksum,
	}
}

// RunAll runs every component with the given base options.
func RunAll(baseOpts *Options) ([]*Results, error) {
	components := []Component{
		ComponentHash,
		ComponentPerlin,
		ComponentValue,
		ComponentFractal,
		ComponentMapBuild,
		ComponentReference,
	}

	var results []*Results
	for _, component := range components {
		opts := *baseOpts
		opts.Component = component
		result, err := Run(&opts)
		if err != nil {
			return nil, fmt.Errorf("benchmarking %s: %w", component, err)
		}
		results = append(results, result)
		PrintResults(result)
	}
	return results, nil
}

// PrintResults prints one benchmark result to stdout.
func PrintResults(r *Results) {
	fmt.Printf("=== Sampling Benchmark: %s ===\n", r.Component)
	fmt.Printf("Samples: %d\n", r.Samples)
	fmt.Printf("Total Time: %v\n", r.TotalTime)
	fmt.Printf("Per Sample: %.1f ns\n", r.NsPerSample)
	fmt.Printf("Throughput: %.0f samples/s\n", r.SamplesPerSec)
	fmt.Printf("Checksum: %g\n", r.Checksum)
	fmt.Println("==========================================")
}

// SaveResultsToFile saves benchmark results to a CSV file.
func SaveResultsToFile(results []*Results, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	f.WriteString("Component,Samples,TotalTimeNs,NsPerSample,SamplesPerSec,Checksum\n")
	for _, r := range results {
		f.WriteString(fmt.Sprintf("%s,%d,%d,%.2f,%.0f,%g\n",
			r.Component,
			r.Samples,
			r.TotalTime.Nanoseconds(),
			r.NsPerSample,
			r.SamplesPerSec,
			r.Checksum))
	}
	return nil
}
