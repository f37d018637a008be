// Package tsp solves the asymmetric Travelling Salesperson Problem with a
// best-first Branch-and-Bound search over partial tours.
//
// Entry points:
//
//   - TSPBranchAndBound — best-first search ordered by the normalized reduced-matrix
//     bound (bound/depth), seeded with a random baseline tour (BSSF), pruning
//     every node whose bound cannot beat the incumbent. Anytime: when the time
//     allowance expires the best tour found so far is returned.
//
//   - TSPRandomTour — the baseline: draws uniformly random permutations until one
//     has a finite cost or the allowance expires.
//
//   - Solve — dispatcher keyed by Algorithm.
//
// Inputs come from the City/Scenario collaborators: each city has a stable
// zero-based index and a (possibly asymmetric) CostTo function where
// math.Inf(1) means "unreachable". The solver builds the N×N cost matrix once
// (diagonal forced to +Inf) and every search node owns an independent copy.
//
// "No tour exists" is not an error: Results.Cost is +Inf and Results.Solution
// is nil. Errors are reserved for malformed inputs and for failures of the
// city collaborator, which are propagated unchanged (errors.Is-transparent).
//
// Complexity:
//   - Per expanded node: O(n) children × O(n²) copy + reduction.
//   - Worst case exponential in n; practical speed comes from pruning.
//   - Memory: O(queue · n²), the queue is unbounded.
package tsp
