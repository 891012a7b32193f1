package brute

import (
	"math"

	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/internal/parallel"
)

// Compute returns the signed distance field of img by exhaustive scan: for
// every cell it searches every opposite-colored cell for the minimum edge
// distance (grid.EdgeDistance), negating the result for interior cells.
//
// If img is uniformly interior or uniformly exterior, both unsigned
// distance fields it would otherwise be built from are vacuous, so
// Compute returns an all-zero grid without scanning.
//
// If parallel is true, rows are dispatched across workers goroutines
// (workers <= 0 selects runtime.GOMAXPROCS(0)); each goroutine only ever
// writes its own row, so no synchronization is needed beyond the final
// join. Complexity: Θ(W²H²) regardless of worker count.
func Compute(img *grid.BooleanGrid, useParallel bool, workers int) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	w, h := img.Width(), img.Height()
	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}

	if _, uniform := img.Uniform(); uniform {
		return out, nil
	}

	scanRow := func(y int) {
		row := out.Row(y)
		for x := 0; x < w; x++ {
			interior := img.At(x, y)
			best := math.Inf(1)
			for py := 0; py < h; py++ {
				for px := 0; px < w; px++ {
					if img.At(px, py) == interior {
						continue
					}
					if d := grid.EdgeDistance(x, y, px, py); d < best {
						best = d
					}
				}
			}
			if interior {
				best = -best
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
