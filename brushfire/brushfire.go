package brushfire

import (
	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/wavefront"
)

// neighborOffsets is the fixed 8-connected step table, one entry per
// possible (stepX, stepY) a propagation hop can take. Precomputed once,
// mirroring gridgraph.NewGridGraph's neighborOffsets table.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0} /*      */, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Compute returns the unsigned distance field of img: every source-colored
// cell (interior if invert is false, exterior if invert is true) holds 0,
// and every other cell holds the exact Euclidean edge distance to the
// nearest source cell.
//
// Compute fails only on a nil image or a Variant outside the enumerated
// set; there is no notion of invalid content because grid.BooleanGrid
// cannot itself represent invalid dimensions once constructed.
func Compute(img *grid.BooleanGrid, invert bool, opts ...Option) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Variant {
	case SingleQueue:
		return computeSingleQueue(img, invert)
	case MultiQueuePolar:
		return computeMultiQueue(img, invert, cfg)
	default:
		return nil, ErrUnknownVariant
	}
}

// isSource reports whether a cell of the given value counts as the
// propagation source under the invert flag: interior (true) when invert
// is false, exterior (false) when invert is true.
func isSource(value, invert bool) bool {
	return value != invert
}

// computeSingleQueue runs the propagation loop with a single shared
// wavefront.Queue.
func computeSingleQueue(img *grid.BooleanGrid, invert bool) (*grid.ScalarGrid, error) {
	w, h := img.Width(), img.Height()
	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}

	closed := make([]bool, w*h)
	q := wavefront.NewQueue()

	seed(img, invert, func(n wavefront.Node) { q.Push(n) })

	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		idx := n.Cell.Y*w + n.Cell.X
		if closed[idx] {
			continue
		}
		closed[idx] = true
		out.Set(n.Cell.X, n.Cell.Y, n.Priority())

		relax(img, invert, closed, n, func(next wavefront.Node) { q.Push(next) })
	}

	return out, nil
}

// seed enqueues an initial wavefront.Node for every non-source neighbor of
// every source cell.
func seed(img *grid.BooleanGrid, invert bool, push func(wavefront.Node)) {
	w, h := img.Width(), img.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !isSource(img.At(x, y), invert) {
				continue
			}
			for _, step := range neighborOffsets {
				nx, ny := x+step[0], y+step[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if isSource(img.At(nx, ny), invert) {
					continue
				}
				dx := float64(x-nx) / 2
				dy := float64(y-ny) / 2
				push(wavefront.NewNode(nx, ny, dx, dy))
			}
		}
	}
}

// relax offers a freshly-closed node's neighbors an updated offset vector:
// the neighbor's new offset is the closed node's offset minus the integer
// step taken to reach it.
func relax(img *grid.BooleanGrid, invert bool, closed []bool, n wavefront.Node, push func(wavefront.Node)) {
	w, h := img.Width(), img.Height()
	for _, step := range neighborOffsets {
		nx, ny := n.Cell.X+step[0], n.Cell.Y+step[1]
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if closed[ny*w+nx] {
			continue
		}
		if isSource(img.At(nx, ny), invert) {
			continue
		}
		push(wavefront.NewNode(nx, ny, n.DX-float64(step[0]), n.DY-float64(step[1])))
	}
}
