package sdfield

import "errors"

// Sentinel errors for sdfield dispatch and validation.
var (
	// ErrNilImage is returned when Compute or ComputeUDF is called with a
	// nil grid.
	ErrNilImage = errors.New("sdfield: image must not be nil")

	// ErrUnknownEngine is returned when a Engine outside the enumerated
	// set is supplied via WithEngine.
	ErrUnknownEngine = errors.New("sdfield: unknown engine")

	// ErrUnknownVariant is returned when a brushfire.Variant outside the
	// enumerated set is supplied via WithBrushfireVariant.
	ErrUnknownVariant = errors.New("sdfield: unknown brushfire variant")

	// ErrInvalidThreadCount is returned when WithThreadCount is given a
	// negative value; zero is accepted and means "use hardware
	// concurrency", matching brushfire.Options and linear.Options.
	ErrInvalidThreadCount = errors.New("sdfield: thread count must not be negative")
)
