package grid

import "errors"

// Sentinel errors for grid construction and validation.
var (
	// ErrInvalidDimensions indicates a zero or negative width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must both be at least 1")

	// ErrNonRectangular indicates the rows of a source 2D slice differ in length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrShapeMismatch indicates two grids expected to share dimensions do not.
	ErrShapeMismatch = errors.New("grid: shape mismatch between operands")
)
