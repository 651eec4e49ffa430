package pathfind

// nodeItem is a frontier entry: a cell, the cost it was pushed with, its
// priority (cost, or cost plus heuristic) and an insertion sequence number.
type nodeItem struct {
	id       int
	cost     float64
	priority float64
	seq      int
}

// nodePQ is a min-heap of *nodeItem ordered by priority, then by insertion
// order. Entries made stale by a cheaper push stay in the heap and are
// skipped when popped (lazy decrease-key).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, breaking ties by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
