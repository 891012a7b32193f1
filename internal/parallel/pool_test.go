package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RLin8910/parallel-sdf/internal/parallel"
)

func TestRange_VisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 97 // deliberately not a multiple of any small worker count
	seen := make([]int32, n)

	parallel.Range(n, 8, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, count := range seen {
		assert.Equalf(t, int32(1), count, "index %d visited %d times", i, count)
	}
}

func TestRange_SerialFallback(t *testing.T) {
	var order []int
	parallel.Range(5, 1, func(i int) {
		order = append(order, i)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestRange_ZeroLength(t *testing.T) {
	called := false
	parallel.Range(0, 4, func(int) { called = true })
	assert.False(t, called)
}

func TestWorkers_NonPositiveFallsBackToGOMAXPROCS(t *testing.T) {
	assert.Greater(t, parallel.Workers(0), 0)
	assert.Greater(t, parallel.Workers(-3), 0)
	assert.Equal(t, 5, parallel.Workers(5))
}

func TestPair_RunsBoth(t *testing.T) {
	var a, b int32
	parallel.Pair(func() {
		atomic.StoreInt32(&a, 1)
	}, func() {
		atomic.StoreInt32(&b, 1)
	})
	assert.Equal(t, int32(1), a)
	assert.Equal(t, int32(1), b)
}
