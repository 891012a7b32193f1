package imaging

import "errors"

// ErrNilImage is returned when Threshold is called with a nil image.Image.
var ErrNilImage = errors.New("imaging: image must not be nil")
