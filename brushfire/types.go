package brushfire

import "errors"

// Sentinel errors for brushfire execution.
var (
	// ErrNilImage is returned when Compute is called with a nil grid.
	ErrNilImage = errors.New("brushfire: image must not be nil")

	// ErrUnknownVariant is returned when a Variant outside the enumerated
	// set is supplied via WithVariant.
	ErrUnknownVariant = errors.New("brushfire: unknown variant")
)

// Variant selects the queue partitioning strategy used during
// propagation.
type Variant int

const (
	// SingleQueue processes the entire wavefront through one shared
	// priority queue. Simple, and the default.
	SingleQueue Variant = iota

	// MultiQueuePolar shards the wavefront across P priority queues
	// partitioned by the polar sector of each cell relative to the image
	// center, on the premise that a radially expanding wavefront keeps
	// its global minimum concentrated in a small set of sectors at any
	// given moment.
	MultiQueuePolar
)

// Option configures brushfire.Compute via functional arguments, the same
// pattern bfs.Option and dijkstra.Option use in lvlath.
type Option func(*Options)

// Options holds the tunable parameters of a single Compute call.
type Options struct {
	// Variant selects SingleQueue or MultiQueuePolar.
	Variant Variant

	// Parallel enables concurrent work where the chosen Variant supports
	// it: MultiQueuePolar peeks every queue head concurrently each step;
	// the choice of the global minimum stays on one goroutine.
	Parallel bool

	// ThreadCount selects how many worker sectors MultiQueuePolar uses,
	// and is otherwise ignored. A value <= 0 selects
	// runtime.GOMAXPROCS(0).
	ThreadCount int
}

// DefaultOptions returns the zero-value-safe defaults: SingleQueue,
// parallel disabled, hardware-concurrency thread count.
func DefaultOptions() Options {
	return Options{
		Variant:     SingleQueue,
		Parallel:    false,
		ThreadCount: 0,
	}
}

// WithVariant selects the queue partitioning strategy.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithParallel toggles concurrent propagation for MultiQueuePolar.
func WithParallel(enabled bool) Option {
	return func(o *Options) { o.Parallel = enabled }
}

// WithThreadCount sets the sector count for MultiQueuePolar. Values <= 0
// are treated as "use hardware concurrency" at Compute time.
func WithThreadCount(n int) Option {
	return func(o *Options) { o.ThreadCount = n }
}
