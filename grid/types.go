package grid

// BooleanGrid is a rectangular W×H array of bool, addressed (x, y) with
// x in [0, W) and y in [0, H). Element true denotes an interior cell,
// false an exterior cell. Set and Row allow a caller to fill a grid;
// engines only ever read it.
type BooleanGrid struct {
	width, height int
	cells         []bool // row-major: cells[y*width+x]
}

// NewBooleanGrid allocates a W×H grid with every cell set to false.
// Returns ErrInvalidDimensions if width or height is less than 1.
func NewBooleanGrid(width, height int) (*BooleanGrid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	return &BooleanGrid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}, nil
}

// BooleanGridFromRows deep-copies a rectangular [][]bool into a BooleanGrid.
// rows[y][x] becomes grid element (x, y). Returns ErrInvalidDimensions if
// rows has no rows or no columns, or ErrNonRectangular if row lengths
// differ.
func BooleanGridFromRows(rows [][]bool) (*BooleanGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h := len(rows)
	w := len(rows[0])
	g, err := NewBooleanGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Width returns the grid's horizontal extent.
func (g *BooleanGrid) Width() int { return g.width }

// Height returns the grid's vertical extent.
func (g *BooleanGrid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *BooleanGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the value at (x, y). x and y are not checked separately: it
// panics only when y*Width()+x falls outside the grid, so an x past the
// row end reads a cell of a later row. Callers on the hot path are
// expected to have validated coordinates via InBounds already.
func (g *BooleanGrid) At(x, y int) bool {
	return g.cells[y*g.width+x]
}

// Set assigns the value at (x, y), with the same index handling as At.
func (g *BooleanGrid) Set(x, y int, v bool) {
	g.cells[y*g.width+x] = v
}

// Row returns a view of row y as a []bool of length Width().
// Mutating the returned slice mutates the grid.
func (g *BooleanGrid) Row(y int) []bool {
	return g.cells[y*g.width : (y+1)*g.width]
}

// Inverted returns a fresh BooleanGrid with every cell negated; the
// receiver is left unchanged.
func (g *BooleanGrid) Inverted() *BooleanGrid {
	out := &BooleanGrid{width: g.width, height: g.height, cells: make([]bool, len(g.cells))}
	for i, v := range g.cells {
		out.cells[i] = !v
	}
	return out
}

// Uniform reports whether every cell holds the same value, and returns
// that value. Used to detect the degenerate all-interior/all-exterior
// case, in which the SDF is defined to be all zeros.
func (g *BooleanGrid) Uniform() (value, uniform bool) {
	if len(g.cells) == 0 {
		return false, true
	}
	first := g.cells[0]
	for _, v := range g.cells[1:] {
		if v != first {
			return false, false
		}
	}
	return first, true
}

// ScalarGrid is a rectangular W×H array of float64, the output type of
// every distance-field engine. Freshly allocated by the engine that
// produces it; ownership passes to the caller on return.
type ScalarGrid struct {
	width, height int
	cells         []float64 // row-major: cells[y*width+x]
}

// NewScalarGrid allocates a W×H grid with every cell set to 0.
// Returns ErrInvalidDimensions if width or height is less than 1.
func NewScalarGrid(width, height int) (*ScalarGrid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	return &ScalarGrid{
		width:  width,
		height: height,
		cells:  make([]float64, width*height),
	}, nil
}

// Width returns the grid's horizontal extent.
func (g *ScalarGrid) Width() int { return g.width }

// Height returns the grid's vertical extent.
func (g *ScalarGrid) Height() int { return g.height }

// At returns the value at (x, y). As with BooleanGrid.At, x and y are not
// checked separately; it panics only when y*Width()+x falls outside the
// grid.
func (g *ScalarGrid) At(x, y int) float64 {
	return g.cells[y*g.width+x]
}

// Set assigns the value at (x, y), with the same index handling as At.
func (g *ScalarGrid) Set(x, y int, v float64) {
	g.cells[y*g.width+x] = v
}

// SameShape reports whether g and other share the same width and height.
func (g *ScalarGrid) SameShape(other *ScalarGrid) bool {
	return g.width == other.width && g.height == other.height
}

// Row returns a mutable view of row y as a []float64 of length Width().
// Used by engines that fill a grid one row at a time in a worker goroutine;
// each worker's rows are disjoint, so no synchronization is needed across
// concurrent Row() writers (see internal/parallel).
func (g *ScalarGrid) Row(y int) []float64 {
	return g.cells[y*g.width : (y+1)*g.width]
}

// Column writes into dst the values of column x, top to bottom. dst must
// have length Height().
func (g *ScalarGrid) Column(x int, dst []float64) {
	for y := 0; y < g.height; y++ {
		dst[y] = g.cells[y*g.width+x]
	}
}

// SetColumn writes src into column x, top to bottom. src must have length
// Height().
func (g *ScalarGrid) SetColumn(x int, src []float64) {
	for y := 0; y < g.height; y++ {
		g.cells[y*g.width+x] = src[y]
	}
}
