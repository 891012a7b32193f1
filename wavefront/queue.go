package wavefront

import "container/heap"

// Queue is a min-priority queue of Node ordered by Priority(), ascending.
// It implements the lazy decrease-key pattern: Push never rejects or
// mutates an existing entry, it simply appends. Callers that want
// "insert-or-improve" semantics push unconditionally and rely on the
// fact that a later, better Node for the same Cell will always be popped
// before an earlier, worse one — so once the caller has committed a
// Cell's result (closed it), any subsequent Pop for that Cell can be
// discarded as stale. This mirrors lvlath's dijkstra.nodePQ exactly,
// generalized from a single scalar distance to a 2D vector-carrying one.
type Queue struct {
	items nodeHeap
}

// NewQueue returns an empty Queue ready for use.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.items)
	return q
}

// Push inserts n. Time: O(log n).
func (q *Queue) Push(n Node) {
	heap.Push(&q.items, n)
}

// Pop removes and returns the minimum-priority Node. The second return
// value is false if the queue is empty.
func (q *Queue) Pop() (Node, bool) {
	if q.items.Len() == 0 {
		return Node{}, false
	}
	return heap.Pop(&q.items).(Node), true
}

// Peek returns the minimum-priority Node without removing it. The second
// return value is false if the queue is empty. Used by the multi-queue
// brushfire variant to compare heads across sectors without popping.
func (q *Queue) Peek() (Node, bool) {
	if q.items.Len() == 0 {
		return Node{}, false
	}
	return q.items[0], true
}

// Len returns the number of entries currently queued, including any
// stale duplicates awaiting lazy discard.
func (q *Queue) Len() int { return q.items.Len() }

// nodeHeap is the container/heap backing store, keyed on Priority().
type nodeHeap []Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Priority() < h[j].Priority() }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
