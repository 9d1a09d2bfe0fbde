package dijkstra

// nodeItem is one heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
//
// Lazy decrease-key: a vertex whose distance improves is pushed again and the
// older entry stays behind. When popped, an entry with dist != distTo[id] is
// stale and the caller skips it.
type nodePQ []nodeItem

// Len returns the number of entries in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes the last entry; called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
