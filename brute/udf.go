package brute

import (
	"math"

	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/internal/parallel"
)

// ComputeUDF returns the unsigned distance field of img by exhaustive scan:
// source cells (interior if invert is false, exterior if invert is true)
// hold 0, every other cell holds the minimum edge distance to a source
// cell. It exists so sdfield.ComputeUDF can dispatch to Brute the same way
// it dispatches to brushfire.Compute and linear.Compute; Compute itself
// stays the more direct single-pass signed scan since it never needs to run
// this twice and compose the halves.
//
// If img has no source cells, or is entirely source cells, ComputeUDF
// returns an all-zero grid without scanning, matching the degenerate
// behavior brushfire.Compute and linear.Compute fall into when their
// wavefront never gets seeded.
func ComputeUDF(img *grid.BooleanGrid, invert, useParallel bool, workers int) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	w, h := img.Width(), img.Height()
	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}

	isSource := func(x, y int) bool { return img.At(x, y) != invert }

	var anySource, anyNonSource bool
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isSource(x, y) {
				anySource = true
			} else {
				anyNonSource = true
			}
		}
	}
	if !anySource || !anyNonSource {
		return out, nil
	}

	scanRow := func(y int) {
		row := out.Row(y)
		for x := 0; x < w; x++ {
			if isSource(x, y) {
				row[x] = 0
				continue
			}
			best := math.Inf(1)
			for py := 0; py < h; py++ {
				for px := 0; px < w; px++ {
					if !isSource(px, py) {
						continue
					}
					if d := grid.EdgeDistance(x, y, px, py); d < best {
						best = d
					}
				}
			}
			row[x] = best
		}
	}

	workerCount := 1
	if useParallel {
		workerCount = workers
	}
	parallel.Range(h, workerCount, scanRow)

	return out, nil
}
