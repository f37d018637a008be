package tsp

// Internal hooks for the external tsp_test package.
var (
	MakeChild           = makeChild
	DeadEnd             = deadEnd
	RouteCost           = routeCost
	RotateToStart       = rotateToStart
	ValidatePermutation = validatePermutation
	PermInto            = permInto
	RNGFromSeed         = rngFromSeed
)

// QueueOrder pushes one node per (bound, depth) pair, using the position as
// the insertion sequence, and returns the sequence numbers in pop order.
func QueueOrder(bounds []float64, depths []int) []int {
	var (
		pq  nodePQ
		i   int
		out = make([]int, 0, len(bounds))
	)
	for i = range bounds {
		pq.Push(newSearchNode(i, bounds[i], make([]int, depths[i]), nil))
	}
	initHeap(&pq)
	for pq.Len() > 0 {
		out = append(out, popNode(&pq).seq)
	}

	return out
}
