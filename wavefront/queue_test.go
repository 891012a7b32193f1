package wavefront_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RLin8910/parallel-sdf/wavefront"
)

func TestNode_Priority(t *testing.T) {
	n := wavefront.NewNode(3, 4, 0.3, 0.4)
	assert.InDelta(t, 0.5, n.Priority(), 1e-9)
}

func TestQueue_PopsInPriorityOrder(t *testing.T) {
	q := wavefront.NewQueue()
	q.Push(wavefront.NewNode(0, 0, 5, 0))
	q.Push(wavefront.NewNode(1, 0, 1, 0))
	q.Push(wavefront.NewNode(2, 0, 3, 0))

	var order []float64
	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		order = append(order, n.Priority())
	}
	assert.Equal(t, []float64{1, 3, 5}, order)
}

func TestQueue_LazyDecreaseKey(t *testing.T) {
	q := wavefront.NewQueue()
	// Two entries for the same cell: the caller relies on the lower one
	// surfacing first, and treats the second pop of that cell as stale.
	q.Push(wavefront.NewNode(2, 2, 10, 0))
	q.Push(wavefront.NewNode(2, 2, 1, 0))

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, wavefront.Cell{X: 2, Y: 2}, first.Cell)
	assert.InDelta(t, 1, first.Priority(), 1e-9)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, wavefront.Cell{X: 2, Y: 2}, second.Cell)
	assert.InDelta(t, 10, second.Priority(), 1e-9)
}

func TestQueue_PeekDoesNotRemove(t *testing.T) {
	q := wavefront.NewQueue()
	q.Push(wavefront.NewNode(0, 0, 1, 1))

	peeked, ok := q.Peek()
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, peeked.Priority(), 1e-9)
	assert.Equal(t, 1, q.Len())

	popped, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, peeked, popped)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_EmptyPop(t *testing.T) {
	q := wavefront.NewQueue()
	_, ok := q.Pop()
	assert.False(t, ok)
}
