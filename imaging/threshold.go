package imaging

import (
	"image"
	"image/color"

	"github.com/RLin8910/parallel-sdf/grid"
)

// Luminance is the default channel selector for Threshold: a perceptual
// grayscale value in [0, 1], weighted 54:184:18 red:green:blue, the same
// weighting bithoarder-distancefield's NewMonochromeFromTreshold uses
// (scaled there to a 0..256 integer range instead of a float in [0, 1]).
func Luminance(c color.Color) float64 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0
	}
	rf := float64(r) / float64(a)
	gf := float64(g) / float64(a)
	bf := float64(b) / float64(a)
	return (rf*54 + gf*184 + bf*18) / 256
}

// Alpha selects a pixel's alpha channel, normalized to [0, 1]. Useful as a
// channel selector for icon fonts and cutout sprites where opacity, not
// color, marks the interior.
func Alpha(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}

// Threshold converts img into a BooleanGrid: a pixel is interior (true)
// when channel(pixel) >= t. If channel is nil, Luminance is used.
//
// The returned grid has one cell per pixel in img.Bounds(), addressed
// relative to that bounds rectangle's origin — cell (0, 0) is
// img.Bounds().Min, not necessarily image coordinate (0, 0).
func Threshold(img image.Image, t float64, channel func(color.Color) float64) (*grid.BooleanGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if channel == nil {
		channel = Luminance
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out, err := grid.NewBooleanGrid(w, h)
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(b.Min.X+x, b.Min.Y+y)
			out.Set(x, y, channel(c) >= t)
		}
	}

	return out, nil
}
