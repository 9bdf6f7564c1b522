package planner

// nodeItem represents a candidate node and its current f-score (g + h) in
// the open set. Stored in the priority queue ordered by f ascending.
type nodeItem struct {
	id string
	f  float64
}

// nodePQ is a min-heap of *nodeItem ordered by f-score. Like dijkstra's
// nodePQ, this uses a lazy-decrease-key strategy: a shorter path to a node
// already in the heap is pushed as a new entry rather than updated in
// place. Unlike dijkstra, runner.run does not skip stale pops against a
// visited set — it re-expands every popped item using the current
// r.gScore[item.id], which is harmless (a stale g can only lose the
// subsequent "< best" comparison) but does mean a node may be expanded
// more than once.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
