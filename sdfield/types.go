package sdfield

import (
	"context"

	"github.com/RLin8910/parallel-sdf/brushfire"
)

// Engine selects which algorithm computes the distance field.
type Engine int

const (
	// Brute uses the exhaustive Θ(W²H²) reference scan. Only practical on
	// small grids or as a correctness oracle for the other two engines.
	Brute Engine = iota

	// Brushfire uses best-first wavefront propagation, Θ((WH) log(WH))
	// expected.
	Brushfire

	// Linear uses the two-pass separable transform, Θ(WH).
	Linear
)

// Option configures a Compute or ComputeUDF call via functional arguments,
// the same pattern brushfire.Option and linear.Option use.
type Option func(*Config)

// Config holds the tunable parameters of a single Compute/ComputeUDF call.
type Config struct {
	// Engine selects Brute, Brushfire, or Linear. Linear is the default:
	// it is asymptotically the fastest of the three and, thanks to its
	// own empty-source guard, returns an all-zero grid rather than large
	// bogus distances on a grid with no source cell.
	Engine Engine

	// Parallel enables concurrent dispatch within the chosen engine.
	Parallel bool

	// ThreadCount selects worker count when Parallel is true. Zero
	// selects hardware concurrency at Compute time; a negative value is
	// rejected with ErrInvalidThreadCount.
	ThreadCount int

	// BrushfireVariant selects the queue partitioning strategy when
	// Engine == Brushfire. Ignored otherwise.
	BrushfireVariant brushfire.Variant

	// Ctx, if non-nil, is checked by Compute for cancellation before
	// dispatching to the chosen engine and, for Brushfire/Linear, again
	// after compose's two concurrent UDF passes have both finished and
	// before they are folded. A cancelled Ctx causes Compute to return a
	// freshly allocated all-zero grid of the image's shape alongside the
	// wrapped context error. ComputeUDF does not check Ctx.
	Ctx context.Context
}

// DefaultOptions returns Linear/SingleQueue, parallel enabled at hardware
// concurrency, and no cancellation context.
func DefaultOptions() Config {
	return Config{
		Engine:           Linear,
		Parallel:         true,
		ThreadCount:      0,
		BrushfireVariant: brushfire.SingleQueue,
		Ctx:              nil,
	}
}

// WithEngine selects the computation engine.
func WithEngine(e Engine) Option {
	return func(c *Config) { c.Engine = e }
}

// WithParallel toggles concurrent dispatch within the chosen engine.
func WithParallel(enabled bool) Option {
	return func(c *Config) { c.Parallel = enabled }
}

// WithThreadCount sets the worker count used when Parallel is enabled.
func WithThreadCount(n int) Option {
	return func(c *Config) { c.ThreadCount = n }
}

// WithBrushfireVariant selects the queue partitioning strategy for the
// Brushfire engine. Ignored by Brute and Linear.
func WithBrushfireVariant(v brushfire.Variant) Option {
	return func(c *Config) { c.BrushfireVariant = v }
}

// WithContext attaches a cancellation context, checked by Compute at the
// points described on Config.Ctx.
func WithContext(ctx context.Context) Option {
	return func(c *Config) { c.Ctx = ctx }
}
