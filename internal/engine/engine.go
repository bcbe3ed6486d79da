// Package engine orchestrates batch field evaluation: it fans an
// observer batch out across CPU workers, evaluates every source on
// each chunk and sums the contributions order-preservingly.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/magsim/internal/field"
	"github.com/san-kum/magsim/internal/magmath"
	"github.com/san-kum/magsim/internal/source"
)

type Engine struct {
	workers int
}

func New() *Engine {
	return &Engine{workers: runtime.NumCPU()}
}

// NewWithWorkers is mainly for tests; worker counts below 1 are
// clamped to 1.
func NewWithWorkers(workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

// Evaluate computes the superposed field of all sources at every
// observer. Small batches run serially; larger ones are split into
// contiguous chunks, one goroutine per worker, each writing only its
// own output range. Cancellation is checked per chunk.
func (e *Engine) Evaluate(ctx context.Context, ft field.FieldType, sources []source.Source, observers []magmath.Vec3) ([]magmath.Vec3, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources to evaluate")
	}
	n := len(observers)
	if n == 0 {
		return nil, fmt.Errorf("no observers to evaluate")
	}

	if n < 64 || e.workers == 1 {
		return source.Superpose(ft, sources, observers)
	}

	out := make([]magmath.Vec3, n)
	chunkSize := (n + e.workers - 1) / e.workers

	var wg sync.WaitGroup
	errs := make([]error, e.workers)

	for w := 0; w < e.workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			if ctx.Err() != nil {
				errs[worker] = ctx.Err()
				return
			}
			chunk, err := source.Superpose(ft, sources, observers[start:end])
			if err != nil {
				errs[worker] = err
				return
			}
			copy(out[start:end], chunk)
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LineObservers returns n points evenly spaced from start to end,
// endpoints included.
func LineObservers(start, end magmath.Vec3, n int) []magmath.Vec3 {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []magmath.Vec3{start}
	}
	step := end.Sub(start).Scale(1 / float64(n-1))
	pts := make([]magmath.Vec3, n)
	for i := range pts {
		pts[i] = start.Add(step.Scale(float64(i)))
	}
	return pts
}

// GridObservers returns nu*nv points spanning a planar patch: origin
// plus i/(nu-1) of u plus j/(nv-1) of v, row-major in v.
func GridObservers(origin, u, v magmath.Vec3, nu, nv int) []magmath.Vec3 {
	if nu < 1 || nv < 1 {
		return nil
	}
	pts := make([]magmath.Vec3, 0, nu*nv)
	for j := 0; j < nv; j++ {
		fv := 0.0
		if nv > 1 {
			fv = float64(j) / float64(nv-1)
		}
		for i := 0; i < nu; i++ {
			fu := 0.0
			if nu > 1 {
				fu = float64(i) / float64(nu-1)
			}
			pts = append(pts, origin.Add(u.Scale(fu)).Add(v.Scale(fv)))
		}
	}
	return pts
}
