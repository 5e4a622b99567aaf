package mapbuild

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"noise-go/pkg/buffers"
	"noise-go/pkg/noise"
)

// Builder samples a noise field over an axis-aligned window of the x/y
// plane at a fixed z. Setters return the builder for chaining; Build may
// be called repeatedly and each call produces an independent grid.
//
// Builds are deterministic: for a given source and configuration the
// parallel result is identical to a sequential one, whatever the worker
// count.
type Builder struct {
	src     noise.Sampler
	width   int
	height  int
	xLo     float64
	xHi     float64
	yLo     float64
	yHi     float64
	z       float64
	workers int
}

// NewBuilder returns a builder over src with a 256x256 raster spanning
// [-1, 1) on both axes at z = 0, using one worker per CPU.
func NewBuilder(src noise.Sampler) *Builder {
	return &Builder{
		src:     src,
		width:   256,
		height:  256,
		xLo:     -1,
		xHi:     1,
		yLo:     -1,
		yHi:     1,
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetSize sets the raster dimensions in samples.
func (b *Builder) SetSize(w, h int) *Builder {
	b.width, b.height = w, h
	return b
}

// SetBounds sets the sampled window: x spans [xLo, xHi), y spans [yLo,
// yHi), each divided evenly by the raster dimensions.
func (b *Builder) SetBounds(xLo, xHi, yLo, yHi float64) *Builder {
	b.xLo, b.xHi, b.yLo, b.yHi = xLo, xHi, yLo, yHi
	return b
}

// SetZ sets the z plane the window is sampled at.
func (b *Builder) SetZ(z float64) *Builder {
	b.z = z
	return b
}

// SetWorkers caps row parallelism. Values below 1 reset to the CPU count.
func (b *Builder) SetWorkers(n int) *Builder {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	b.workers = n
	return b
}

// Build samples the configured window row-parallel and returns the filled
// grid. Rows are independent; cancellation via ctx stops scheduling and
// returns the context's error.
func (b *Builder) Build(ctx context.Context) (*Grid, error) {
	if b.width < 1 || b.height < 1 {
		return nil, fmt.Errorf("mapbuild: invalid raster size %dx%d", b.width, b.height)
	}
	if b.xHi <= b.xLo || b.yHi <= b.yLo {
		return nil, fmt.Errorf("mapbuild: invalid bounds x[%g,%g) y[%g,%g)", b.xLo, b.xHi, b.yLo, b.yHi)
	}

	grid := NewGrid(b.width, b.height)
	xStep := (b.xHi - b.xLo) / float64(b.width)
	yStep := (b.yHi - b.yLo) / float64(b.height)
	pool := buffers.NewRowPool(b.width)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for y := 0; y < b.height && gctx.Err() == nil; y++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := pool.Get()
			py := b.yLo + yStep*float64(y)
			for x := 0; x < b.width; x++ {
				row[x] = b.src.Sample(b.xLo+xStep*float64(x), py, b.z)
			}
			copy(grid.Row(y), row)
			pool.Put(row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The derived context dies with Wait; only the caller's context tells
	// us whether the build itself was cancelled.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}
