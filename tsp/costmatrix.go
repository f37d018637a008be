// Package tsp — cost matrix construction.
//
// BuildCostMatrix queries the city collaborator exactly once per ordered
// pair and stores the answers in a dense N×N buffer. The diagonal is forced
// to +Inf regardless of what the collaborator reports for self-travel.
//
// Validation policy (mirrors the strict sentinels used across the package):
//   - nil city or cities[i].Index() != i ⇒ ErrNilScenario / ErrCityIndex;
//   - NaN or negative cost ⇒ ErrInvalidCost (wrapped with the pair);
//   - +Inf is accepted ("unreachable");
//   - collaborator errors are returned as-is, never masked or wrapped.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// BuildCostMatrix returns the N×N travel-cost matrix for cities.
// An empty input yields (nil, nil): there is nothing to travel between.
//
// Complexity: O(n²) CostTo calls, O(n²) memory.
func BuildCostMatrix(cities []City) (*matrix.Dense, error) {
	var n = len(cities)
	if n == 0 {
		return nil, nil
	}
	if err := checkCities(cities); err != nil {
		return nil, err
	}

	var (
		inf  = math.Inf(1)
		m    *matrix.Dense
		err  error
		i, j int
		c    float64
	)
	if m, err = matrix.NewSquare(n, inf); err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // no self-travel; diagonal stays +Inf
			}
			if c, err = cities[i].CostTo(cities[j]); err != nil {
				return nil, err // collaborator failures propagate unchanged
			}
			if math.IsNaN(c) || c < 0 {
				return nil, fmt.Errorf("%w: %d→%d = %v", ErrInvalidCost, i, j, c)
			}
			if err = m.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// checkCities enforces non-nil cities with stable zero-based indices.
func checkCities(cities []City) error {
	var (
		i int
		c City
	)
	for i, c = range cities {
		if c == nil {
			return fmt.Errorf("%w: city %d", ErrNilScenario, i)
		}
		if c.Index() != i {
			return fmt.Errorf("%w: position %d reports index %d", ErrCityIndex, i, c.Index())
		}
	}

	return nil
}

// deadEnd reports whether some city has no finite outgoing or no finite
// incoming edge, which makes every Hamiltonian cycle impossible.
// Single-city instances never have a dead end (the empty tour is valid).
//
// Complexity: O(n²).
func deadEnd(w *matrix.Dense) bool {
	return w.Rows() >= 2 && w.HasBlockedLine()
}
