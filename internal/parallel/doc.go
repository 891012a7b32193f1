// Package parallel dispatches independent, uniformly-sized index ranges
// (grid rows, grid columns, or polar sectors) across a fixed number of
// worker goroutines.
//
// It is a deliberately smaller relative of gogpu/gg's internal/parallel
// WorkerPool: that pool balances heterogeneous rendering tiles with
// work-stealing queues, because tile cost varies with what's drawn on
// them. Every task this package hands out — one grid row, one grid
// column, one polar sector — costs the same as any other of its kind up
// to boundary effects that are already tolerated, so a simple contiguous
// chunk-per-worker split needs no stealing to stay balanced.
package parallel
