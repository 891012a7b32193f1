package linear

import "github.com/RLin8910/parallel-sdf/grid"

// stepSentinel stands in for "no source cell on this column at all":
// W + H + 2 is larger than any real step count a W×H grid can produce,
// so it always loses to a genuine distance during Pass 2's envelope
// comparisons.
func stepSentinel(w, h int) int {
	return w + h + 2
}

// stepPass fills g (row-major, W×H) with, for column x, the number of
// vertical steps to the nearest source cell in that column (Pass 1 of
// the separable transform). It runs independently per column x, so it is
// safe to call concurrently for disjoint x values sharing the same g
// slice.
func stepPass(img *grid.BooleanGrid, invert bool, g []int, x int) {
	w, h := img.Width(), img.Height()
	sentinel := stepSentinel(w, h)

	idx := func(y int) int { return y*w + x }

	// Forward sweep: distance to the nearest source at or above y.
	if isSource(img.At(x, 0), invert) {
		g[idx(0)] = 0
	} else {
		g[idx(0)] = sentinel
	}
	for y := 1; y < h; y++ {
		if isSource(img.At(x, y), invert) {
			g[idx(y)] = 0
		} else {
			g[idx(y)] = 1 + g[idx(y-1)]
		}
	}

	// Backward sweep: fold in the nearest source at or below y.
	for y := h - 2; y >= 0; y-- {
		if g[idx(y+1)] < g[idx(y)] {
			g[idx(y)] = 1 + g[idx(y+1)]
		}
	}
}

// isSource reports whether a cell of the given value counts as the
// propagation source under the invert flag, matching brushfire's rule:
// interior (true) when invert is false, exterior (false) when invert is
// true.
func isSource(value, invert bool) bool {
	return value != invert
}
