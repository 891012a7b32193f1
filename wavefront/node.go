package wavefront

import "math"

// Cell identifies a grid position independent of any vector offset. Queue
// keeps every pushed Node, so several entries may share a Cell with
// different offsets (and therefore priorities); the caller's closed set
// keys on Cell and discards all but the first one popped.
type Cell struct {
	X, Y int
}

// Node is an immutable record (x, y, dx, dy): a cell paired with the
// current best known vector offset from that cell to the nearest seed,
// measured in cell units. Priority is derived from the offset, never
// stored redundantly, so two Nodes for the same Cell can never disagree
// about their own priority once constructed.
type Node struct {
	Cell   Cell
	DX, DY float64
}

// NewNode constructs a Node for cell (x, y) with offset (dx, dy).
func NewNode(x, y int, dx, dy float64) Node {
	return Node{Cell: Cell{X: x, Y: y}, DX: dx, DY: dy}
}

// Priority returns sqrt(dx²+dy²), the Euclidean length of the node's
// offset vector — its rank in the queue.
func (n Node) Priority() float64 {
	return math.Hypot(n.DX, n.DY)
}
