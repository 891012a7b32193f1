// Package linear computes an unsigned distance field in Θ(WH) time using
// a two-pass separable transform: a row-of-steps pass followed by a
// lower-envelope-of-parabolas scan, the Felzenszwalb–Huttenlocher
// distance transform generalized with the −0.5 edge correction described
// in grid.EdgeDistance.
//
// The two passes are independent along orthogonal axes (Pass 1 across
// columns, Pass 2 across rows), so each is dispatched through
// internal/parallel.Range the same way lvlath's dtw package documents its
// TwoRows memory mode: one scratch buffer per independent unit of work,
// never shared across goroutines.
package linear
