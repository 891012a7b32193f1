package parallel

import (
	"runtime"
	"sync"
)

// Workers clamps a caller-requested thread count to a usable value: if n
// is zero or negative, it returns runtime.GOMAXPROCS(0) (hardware
// concurrency), the same default gogpu/gg's NewWorkerPool falls back to
// when given a non-positive worker count.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Range dispatches fn(i) for every i in [0, n) across workers goroutines.
// Each goroutine is given a contiguous chunk of size ceil(n/workers).
// Range blocks until every index has been processed; there is no shared
// mutable state between fn calls
// beyond whatever the caller's fn closes over, and callers are expected
// to write to disjoint memory per i (disjoint output rows or columns) so
// no further synchronization is required.
//
// A non-positive workers is first resolved through Workers. If the
// resulting count is 1 or n is 1, Range runs fn serially on the calling
// goroutine, avoiding goroutine setup cost for trivial inputs.
func Range(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Pair runs a and b concurrently and waits for both to finish. Used by
// sdfield.compose to run the two independent UDF passes side by side, the
// same two-goroutine WaitGroup shape lvlath's
// core/concurrency_test.go uses to exercise concurrent graph mutation.
func Pair(a, b func()) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a()
	}()
	go func() {
		defer wg.Done()
		b()
	}()
	wg.Wait()
}
