package linear

import (
	"math"

	"github.com/RLin8910/parallel-sdf/grid"
)

// negInf and posInf bound the leftmost and rightmost segment of the lower
// envelope built by envelopePass. They only need to fall outside [0, W) for
// any grid this package will ever see, not represent true infinity.
const (
	negInf = -1 << 30
	posInf = 1 << 30
)

// sep returns the last integer x at which the parabola rooted at column i
// is still no higher than the parabola rooted at column j, for row y's
// step counts in g (row-major, W wide); j wins from sep+1 onward.
// Requires j > i.
func sep(i, j int, g []int, rowOffset int) int {
	gi, gj := g[rowOffset+i], g[rowOffset+j]
	num := j*j - i*i + gj*gj - gi*gi
	den := 2 * (j - i)
	return floorDiv(num, den)
}

// floorDiv is integer division rounding toward negative infinity, unlike
// Go's / which truncates toward zero. sep's numerator can be negative when
// the candidate column's step count dominates the incumbent's.
func floorDiv(a, b int) int {
	q := a / b
	if r := a % b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

// envelopePass fills row y of out with edge-corrected distances, given g
// (Pass 1's per-column step counts, row-major W×H). It scans row y
// independently of every other row, so it is safe to call
// concurrently for disjoint y values sharing the same g and out.
func envelopePass(g []int, w int, out *grid.ScalarGrid, y int) {
	rowOffset := y * w

	closestX := make([]int, w)
	endpts := make([]int, w+1)

	// Left-to-right: build the lower envelope of parabolas rooted at each
	// column, one candidate column at a time, discarding segments the new
	// candidate makes unreachable.
	seg := 0
	closestX[0] = 0
	endpts[0] = negInf
	endpts[1] = posInf

	for cand := 1; cand < w; cand++ {
		s := sep(closestX[seg], cand, g, rowOffset)
		for s <= endpts[seg] {
			seg--
			s = sep(closestX[seg], cand, g, rowOffset)
		}
		seg++
		closestX[seg] = cand
		endpts[seg] = s
		endpts[seg+1] = posInf
	}

	// Left-to-right readout: for each column x, advance to the segment that
	// owns it, then convert the winning column's step count into an
	// edge-corrected distance the same way grid.EdgeDistance does for the
	// diagonal case.
	seg = 0
	for x := 0; x < w; x++ {
		for endpts[seg+1] < x {
			seg++
		}
		i := closestX[seg]
		steps := g[rowOffset+i]

		var diffx, diffy float64
		if x != i {
			diffx = math.Abs(float64(x-i)) - 0.5
		}
		if steps != 0 {
			diffy = float64(steps) - 0.5
		}

		out.Set(x, y, math.Sqrt(diffx*diffx+diffy*diffy))
	}
}
