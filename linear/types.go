package linear

import "errors"

// ErrNilImage is returned when Compute is called with a nil grid.
var ErrNilImage = errors.New("linear: image must not be nil")

// Option configures linear.Compute via functional arguments, following
// bfs.Option's shape.
type Option func(*Options)

// Options holds the tunable parameters of a single Compute call.
type Options struct {
	// Parallel enables dispatching both passes across ThreadCount workers.
	Parallel bool

	// ThreadCount selects the worker count when Parallel is true. A value
	// <= 0 selects runtime.GOMAXPROCS(0).
	ThreadCount int
}

// DefaultOptions returns Parallel disabled with hardware-concurrency
// thread count.
func DefaultOptions() Options {
	return Options{Parallel: false, ThreadCount: 0}
}

// WithParallel toggles concurrent row/column dispatch.
func WithParallel(enabled bool) Option {
	return func(o *Options) { o.Parallel = enabled }
}

// WithThreadCount sets the worker count used when Parallel is enabled.
func WithThreadCount(n int) Option {
	return func(o *Options) { o.ThreadCount = n }
}
