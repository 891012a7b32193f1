// Package grid defines the rectangular raster types shared by every
// distance-field engine (BooleanGrid, ScalarGrid) and the edge metric
// used to measure distance between a cell and an opposite-colored cell.
//
// Grids are backed by a single flat, row-major slice rather than a
// slice-of-slices, so that row and column scans touch contiguous memory
// and can be handed to worker goroutines as plain index ranges.
package grid
