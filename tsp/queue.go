package tsp

import (
	"container/heap"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// searchNode is one partial tour in the branch-and-bound tree.
// Each node exclusively owns its matrix; nothing is shared with the parent.
type searchNode struct {
	key   float64       // normalized bound: bound / depth
	seq   int           // insertion sequence number (tie-break, strictly increasing)
	bound float64       // raw reduced-matrix lower bound
	route []int         // visited cities; route[0] is the start city
	m     *matrix.Dense // reduced matrix reflecting the committed edges
}

// depth is the number of visited cities.
func (nd *searchNode) depth() int { return len(nd.route) }

// last is the city the path currently ends at.
func (nd *searchNode) last() int { return nd.route[len(nd.route)-1] }

// newSearchNode builds a node and derives its priority key.
func newSearchNode(seq int, bound float64, route []int, m *matrix.Dense) *searchNode {
	return &searchNode{
		key:   bound / float64(len(route)),
		seq:   seq,
		bound: bound,
		route: route,
		m:     m,
	}
}

// nodePQ is a min-heap (priority queue) of *searchNode ordered by the composite
// key (normalized bound, seq) ascending: on equal bounds the earlier-created
// node wins, so the expansion order is fully reproducible.
type nodePQ []*searchNode

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller key first, then smaller seq.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *searchNode.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*searchNode)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference so the matrix can be collected
	*pq = old[:n-1]

	return item
}

// initHeap establishes the heap invariant over pq.
func initHeap(pq *nodePQ) { heap.Init(pq) }

// pushNode queues nd.
func pushNode(pq *nodePQ, nd *searchNode) { heap.Push(pq, nd) }

// popNode removes the node with the smallest (key, seq).
func popNode(pq *nodePQ) *searchNode { return heap.Pop(pq).(*searchNode) }
