package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/RLin8910/parallel-sdf/grid"
)

// DefaultBoundaryBand is the |sdf| threshold Visualize uses to paint a cell
// as boundary rather than interior/exterior when the caller passes a
// non-positive boundaryBand. It sits just above a single diagonal step's
// magnitude, sqrt(0.5) ≈ 0.7071, so a one-cell-thick boundary stays
// visible at typical grid resolutions.
const DefaultBoundaryBand = 0.71

// stripePeriod controls how often the interior/exterior banding in
// Visualize repeats, matching the mod-5 banding
// bithoarder-distancefield's CreateDebugImage uses to make distance
// contours readable at a glance.
const stripePeriod = 5.0

// Visualize renders sdf as a debug image: green marks cells within
// boundaryBand of the boundary (|sdf| <= boundaryBand), red stripes mark
// interior distance contours, blue stripes mark exterior distance
// contours. If boundaryBand <= 0, DefaultBoundaryBand is used.
//
// Visualize returns nil if sdf is nil.
func Visualize(sdf *grid.ScalarGrid, boundaryBand float64) *image.NRGBA {
	if sdf == nil {
		return nil
	}
	if boundaryBand <= 0 {
		boundaryBand = DefaultBoundaryBand
	}

	w, h := sdf.Width(), sdf.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := sdf.At(x, y)
			img.SetNRGBA(x, y, shade(v, boundaryBand))
		}
	}

	return img
}

// shade maps a single signed distance value to a debug color.
func shade(v, boundaryBand float64) color.NRGBA {
	if math.Abs(v) <= boundaryBand {
		return color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	}
	if v < 0 {
		if math.Mod(-v, stripePeriod) <= stripePeriod/2 {
			return color.NRGBA{R: 255, G: 0, B: 0, A: 255}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if math.Mod(v, stripePeriod) <= stripePeriod/2 {
		return color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	}
	return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
}
