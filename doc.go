// Package parallelsdf computes 2D signed and unsigned distance fields from
// boolean rasters.
//
// Three interchangeable engines are available, all producing the same
// result within floating-point tolerance:
//
//	brute     — exhaustive Θ(W²H²) scan, the correctness oracle
//	brushfire — best-first wavefront propagation, Θ((WH) log(WH)) expected
//	linear    — two-pass separable transform, Θ(WH)
//
// sdfield is the public entry point; it selects an engine via Option and
// composes the two engines that only produce unsigned fields (brushfire,
// linear) into a signed one. imaging adapts to and from the standard
// library's image.Image for callers working with photographs or icons
// rather than raw boolean grids.
//
// Distances use an edge metric, not center-to-center Euclidean distance:
// grid.EdgeDistance measures from a cell's center to the nearest point on
// the boundary face shared with an opposite-colored cell, so an
// axis-aligned neighbor measures 0.5 and a diagonal neighbor measures
// sqrt(0.5), not 1 and sqrt(2).
package parallelsdf
