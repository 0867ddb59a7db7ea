// Package pscan implements data-parallel tiling over an output ROI: the
// destination ROI is partitioned into disjoint sub-ROIs and dispatched to a
// worker pool, with no shared mutable state between workers and no
// cancellation support.
package pscan

import (
	"runtime"
	"sync"

	"github.com/adriansahlman/imgxform/roi"
)

// DefaultWorkers returns the worker count to use when the caller passes 0
// for nthreads ("use the default").
func DefaultWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// rowsPerTile caps how many destination rows a single sub-ROI tile covers,
// so that a wide-but-short ROI still splits into enough tiles to use every
// worker.
const rowsPerTile = 1

// Rows partitions roi into disjoint row-band sub-ROIs and runs fn on each,
// using up to nthreads workers (0 means DefaultWorkers()). It blocks until
// every sub-ROI has been processed. Sub-ROIs are disjoint in y, so no two
// concurrent calls to fn ever touch the same destination row; within a
// sub-ROI, fn is expected to visit pixels in row-major order.
func Rows(r roi.ROI, nthreads int, fn func(sub roi.ROI)) {
	if r.Empty() {
		return
	}
	n := nthreads
	if n <= 0 {
		n = DefaultWorkers()
	}
	height := r.Height()
	if n > height {
		n = height
	}
	if n <= 1 {
		fn(r)
		return
	}

	type tile struct{ ybegin, yend int }
	tiles := make(chan tile, height)
	for y := r.YBegin; y < r.YEnd; y += rowsPerTile {
		yend := y + rowsPerTile
		if yend > r.YEnd {
			yend = r.YEnd
		}
		tiles <- tile{y, yend}
	}
	close(tiles)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for t := range tiles {
				sub := r
				sub.YBegin, sub.YEnd = t.ybegin, t.yend
				fn(sub)
			}
		}()
	}
	wg.Wait()
}
