// Package wavefront defines the node type and priority queue used by the
// brushfire distance-field engine's best-first propagation.
//
// A Node pairs an integer cell with a real-valued vector offset to the
// nearest seed; its priority is the Euclidean norm of that offset. The
// Queue orders nodes by priority using the same lazy decrease-key
// discipline lvlath's dijkstra package uses for shortest paths: pushing a
// node for a cell that already has a better (lower-priority) entry in the
// queue is wasted work but not incorrect, because stale entries are
// skipped when the caller finds the cell already closed.
package wavefront
