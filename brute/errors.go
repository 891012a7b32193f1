package brute

import "errors"

// ErrNilImage is returned when Compute is called with a nil grid.
var ErrNilImage = errors.New("brute: image must not be nil")
