// Package brushfire computes an unsigned distance field by best-first
// wavefront propagation from boundary seeds, carrying exact vector
// offsets rather than accumulating per-hop scalar increments — the
// carried vector is what keeps the result an exact Euclidean distance
// instead of a chamfer approximation.
//
// The propagation loop is lvlath's dijkstra.Dijkstra restructured for an
// implicit 8-neighbor pixel graph: the same lazy decrease-key heap
// (wavefront.Queue, itself modeled on dijkstra's nodePQ), the same
// closed-set-skip-on-pop discard of stale entries, and the same
// functional-options entry point (bfs.Option's shape, here Option).
package brushfire
