// Package brute computes a signed distance field by exhaustive scan: for
// every cell, it searches every opposite-colored cell in the grid and
// keeps the minimum edge distance. It is Θ(W²H²) and exists to serve as
// the correctness oracle the other two engines (brushfire, linear) are
// checked against, the same role a straightforward reference
// implementation plays in lvlath's benchmark suite for its faster
// algorithms.
package brute
