// Package buffers pools the float64 row buffers map-building workers
// sample into. A build touches at most a handful of rows at a time, so a
// small pool keeps steady-state builds allocation-free regardless of
// raster height.
package buffers

import (
	"sync"
)

// RowPool maintains float64 rows of a fixed width.
type RowPool struct {
	pool  sync.Pool
	width int
}

// NewRowPool creates a pool of rows with width elements each.
func NewRowPool(width int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]float64, width)
				return &row
			},
		},
		width: width,
	}
}

// Get retrieves a row of exactly the pool's width. Contents are stale;
// callers overwrite every element they read.
func (p *RowPool) Get() []float64 {
	row := *(p.pool.Get().(*[]float64))
	if cap(row) < p.width {
		row = make([]float64, p.width)
	} else {
		row = row[:p.width]
	}
	return row
}

// Put returns a row to the pool. Undersized rows are dropped.
func (p *RowPool) Put(row []float64) {
	if row == nil || cap(row) < p.width {
		return
	}
	row = row[:p.width]
	p.pool.Put(&row)
}
