package grid

import "math"

// EdgeDistance returns the distance from the center of query cell (qx, qy)
// to the nearest point of the boundary face shared with an opposite-colored
// candidate cell (px, py).
//
// The boundary between two adjacent cells lies at the midpoint of the face
// between them, not at either cell's center, so an axis-aligned step of one
// cell measures 0.5, not 1: the −0.5 terms below encode that offset. A
// diagonal candidate is treated as the corner of two half-cells, giving the
// Pythagorean combination of the two axis-aligned offsets.
//
// EdgeDistance is symmetric in its two cells, since it only uses the
// absolute coordinate differences; callers always pass (query, candidate)
// in that order for clarity, though the formula does not depend on it.
func EdgeDistance(qx, qy, px, py int) float64 {
	dx := math.Abs(float64(px - qx))
	dy := math.Abs(float64(py - qy))

	if px == qx || py == qy {
		return dx + dy - 0.5
	}

	return math.Hypot(dx-0.5, dy-0.5)
}
