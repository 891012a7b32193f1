package linear

import (
	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/internal/parallel"
)

// Compute returns the unsigned distance field of img in Θ(WH) time using a
// two-pass separable transform: Pass 1 reduces each column to a step count
// toward the nearest source cell, then Pass 2 turns each row's step counts
// into edge-corrected distances via a lower-envelope-of-parabolas scan.
//
// Compute fails only on a nil image, the same contract brute.Compute
// exposes.
//
// If img has no source cells at all (interior if invert is false, exterior
// if invert is true), there is nothing to measure distance to; Compute
// returns an all-zero grid without running either pass, matching
// brushfire.Compute's behavior when its wavefront is never seeded.
func Compute(img *grid.BooleanGrid, invert bool, opts ...Option) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := img.Width(), img.Height()
	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}

	if !hasSource(img, invert) {
		return out, nil
	}

	workers := 1
	if cfg.Parallel {
		workers = parallel.Workers(cfg.ThreadCount)
	}

	g := make([]int, w*h)
	parallel.Range(w, workers, func(x int) {
		stepPass(img, invert, g, x)
	})

	parallel.Range(h, workers, func(y int) {
		envelopePass(g, w, out, y)
	})

	return out, nil
}

// hasSource reports whether any cell of img counts as a propagation source
// under invert. stepPass's sentinel-based step counts are only meaningful
// once at least one column has a real source to anchor against; with none
// at all, every column would accumulate unbounded step counts instead of
// the 0 every engine agrees a sourceless grid should report.
func hasSource(img *grid.BooleanGrid, invert bool) bool {
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isSource(img.At(x, y), invert) {
				return true
			}
		}
	}
	return false
}
