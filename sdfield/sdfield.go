package sdfield

import (
	"fmt"

	"github.com/RLin8910/parallel-sdf/brushfire"
	"github.com/RLin8910/parallel-sdf/brute"
	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/internal/parallel"
	"github.com/RLin8910/parallel-sdf/linear"
)

// Compute returns the signed distance field of img: negative inside,
// non-negative outside, zero magnitude equal to the exact edge distance to
// the nearest opposite-colored cell.
//
// Brute computes the signed field directly in one pass. Brushfire and
// Linear instead compute two unsigned fields — interior-sourced and
// exterior-sourced — and compose them, following compose's doc comment.
func Compute(img *grid.BooleanGrid, opts ...Option) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Ctx != nil {
		if err := cfg.Ctx.Err(); err != nil {
			out, _ := grid.NewScalarGrid(img.Width(), img.Height())
			return out, fmt.Errorf("sdfield: %w", err)
		}
	}

	if cfg.Engine == Brute {
		return brute.Compute(img, cfg.Parallel, cfg.ThreadCount)
	}

	return compose(img, cfg)
}

// ComputeUDF returns the unsigned distance field of img with respect to a
// single source class: interior cells are the source when invert is false,
// exterior cells are the source when invert is true. Source cells hold 0;
// every other cell holds the exact edge distance to the nearest source
// cell.
func ComputeUDF(img *grid.BooleanGrid, invert bool, opts ...Option) (*grid.ScalarGrid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	switch cfg.Engine {
	case Brute:
		return brute.ComputeUDF(img, invert, cfg.Parallel, cfg.ThreadCount)
	case Brushfire:
		return brushfire.Compute(img, invert,
			brushfire.WithVariant(cfg.BrushfireVariant),
			brushfire.WithParallel(cfg.Parallel),
			brushfire.WithThreadCount(cfg.ThreadCount),
		)
	case Linear:
		return linear.Compute(img, invert,
			linear.WithParallel(cfg.Parallel),
			linear.WithThreadCount(cfg.ThreadCount),
		)
	default:
		return nil, ErrUnknownEngine
	}
}

// compose runs computeUDFWith twice — once treating interior cells as the
// source, once treating exterior cells as the source — concurrently via
// parallel.Pair, then folds the two unsigned fields into one signed field:
// an exterior cell's value is its distance to the nearest interior cell,
// an interior cell's value is the negation of its distance to the nearest
// exterior cell.
func compose(img *grid.BooleanGrid, cfg Config) (*grid.ScalarGrid, error) {
	w, h := img.Width(), img.Height()

	var interiorSourced, exteriorSourced *grid.ScalarGrid
	var interiorErr, exteriorErr error

	parallel.Pair(
		func() { interiorSourced, interiorErr = computeUDFWith(img, false, cfg) },
		func() { exteriorSourced, exteriorErr = computeUDFWith(img, true, cfg) },
	)
	if interiorErr != nil {
		return nil, interiorErr
	}
	if exteriorErr != nil {
		return nil, exteriorErr
	}
	if !interiorSourced.SameShape(exteriorSourced) {
		return nil, fmt.Errorf("sdfield: %w", grid.ErrShapeMismatch)
	}

	if cfg.Ctx != nil {
		if err := cfg.Ctx.Err(); err != nil {
			out, _ := grid.NewScalarGrid(w, h)
			return out, fmt.Errorf("sdfield: %w", err)
		}
	}

	out, err := grid.NewScalarGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.At(x, y) {
				out.Set(x, y, -exteriorSourced.At(x, y))
			} else {
				out.Set(x, y, interiorSourced.At(x, y))
			}
		}
	}
	return out, nil
}

// computeUDFWith dispatches directly to the chosen engine's UDF pass,
// avoiding ComputeUDF's own buildConfig/validation round trip since compose
// already holds a validated Config.
func computeUDFWith(img *grid.BooleanGrid, invert bool, cfg Config) (*grid.ScalarGrid, error) {
	switch cfg.Engine {
	case Brushfire:
		return brushfire.Compute(img, invert,
			brushfire.WithVariant(cfg.BrushfireVariant),
			brushfire.WithParallel(cfg.Parallel),
			brushfire.WithThreadCount(cfg.ThreadCount),
		)
	case Linear:
		return linear.Compute(img, invert,
			linear.WithParallel(cfg.Parallel),
			linear.WithThreadCount(cfg.ThreadCount),
		)
	default:
		return nil, ErrUnknownEngine
	}
}

// buildConfig applies opts over DefaultOptions and validates the result,
// the same "apply then validate" order dijkstra.Dijkstra uses for its
// Options.
func buildConfig(opts []Option) (Config, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ThreadCount < 0 {
		return Config{}, ErrInvalidThreadCount
	}
	switch cfg.Engine {
	case Brute, Brushfire, Linear:
	default:
		return Config{}, ErrUnknownEngine
	}
	switch cfg.BrushfireVariant {
	case brushfire.SingleQueue, brushfire.MultiQueuePolar:
	default:
		return Config{}, ErrUnknownVariant
	}

	return cfg, nil
}
