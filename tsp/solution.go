// Package tsp — tours and their cost.
//
// A Solution is an open route (a permutation of all city indices) whose
// cost includes the implicit closing edge route[n-1]→route[0]. Any +Inf edge
// makes the whole cost +Inf. A single-city route has cost 0 (no edges).
//
// Costs are stabilized to 1e-9 absolute precision to avoid FP drift.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Solution is a complete tour.
type Solution struct {
	// Route lists city indices in visiting order; the tour returns to Route[0].
	Route []int
	// Cost is the sum of the n route edges including the closing edge.
	Cost float64
}

// NewSolution validates route against cities and prices it through the
// city collaborator. Collaborator errors are returned unchanged.
//
// Errors:
//   - ErrInvalidRoute if route is not a permutation of 0..len(cities)-1.
//   - ErrNilScenario / ErrCityIndex for malformed cities.
//   - ErrInvalidCost for NaN or negative edge costs.
//
// Complexity: O(n) CostTo calls.
func NewSolution(cities []City, route []int) (*Solution, error) {
	if err := checkCities(cities); err != nil {
		return nil, err
	}
	if err := validatePermutation(route, len(cities)); err != nil {
		return nil, err
	}

	var (
		n    = len(route)
		sum  float64
		i    int
		from City
		to   City
		c    float64
		err  error
	)
	for i = 0; i < n && n > 1; i++ {
		from = cities[route[i]]
		to = cities[route[(i+1)%n]]
		if c, err = from.CostTo(to); err != nil {
			return nil, err
		}
		if math.IsNaN(c) || c < 0 {
			return nil, fmt.Errorf("%w: %d→%d = %v", ErrInvalidCost, route[i], route[(i+1)%n], c)
		}
		sum += c
	}

	return &Solution{Route: copyRoute(route), Cost: round1e9(sum)}, nil
}

// Closed returns the route with the start appended at the end, e.g. [0 2 1 0].
func (s Solution) Closed() []int {
	if len(s.Route) == 0 {
		return nil
	}
	out := make([]int, len(s.Route)+1)
	copy(out, s.Route)
	out[len(s.Route)] = s.Route[0]

	return out
}

// clone returns an independent copy of s.
func (s Solution) clone() Solution {
	return Solution{Route: copyRoute(s.Route), Cost: s.Cost}
}

// solutionFromMatrix prices an already valid route against the cost matrix w.
func solutionFromMatrix(w *matrix.Dense, route []int) *Solution {
	return &Solution{Route: route, Cost: routeCost(w, route)}
}

// routeCost sums w along route including the closing edge; +Inf on any
// blocked edge (the diagonal of w is +Inf, so a repeated city is never cheap).
//
// Complexity: O(n).
func routeCost(w *matrix.Dense, route []int) float64 {
	var n = len(route)
	if n <= 1 {
		return 0
	}
	var (
		sum float64
		i   int
		c   float64
		err error
	)
	for i = 0; i < n; i++ {
		if c, err = w.At(route[i], route[(i+1)%n]); err != nil || math.IsInf(c, 1) {
			return math.Inf(1) // a route leaving the matrix is no tour
		}
		sum += c
	}

	return round1e9(sum)
}

// validatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) error {
	if len(perm) != n || n == 0 {
		return ErrInvalidRoute
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: position %d holds %d", ErrInvalidRoute, i, v)
		}
		seen[v] = true
	}

	return nil
}

// rotateToStart cyclically shifts perm in place so that perm[0]==start.
// Cost is rotation-invariant; rotation only canonicalizes output.
// perm must contain start.
//
// Complexity: O(n) time, O(n) space.
func rotateToStart(perm []int, start int) {
	var (
		n     = len(perm)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if perm[i] == start {
			pivot = i
			break
		}
	}
	if pivot <= 0 {
		return
	}
	tmp := make([]int, n)
	for i = 0; i < n; i++ {
		tmp[i] = perm[(pivot+i)%n]
	}
	copy(perm, tmp)
}

func copyRoute(r []int) []int {
	if r == nil {
		return nil
	}
	out := make([]int, len(r))
	copy(out, r)

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision; ±Inf passes through.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
