package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentinel errors returned by the tsp package.
var (
	// ErrNilScenario indicates that a nil Scenario (or a nil City inside it) was passed.
	ErrNilScenario = errors.New("tsp: scenario is nil")

	// ErrCityIndex indicates that cities[i].Index() != i; the solver relies on
	// stable zero-based indices matching the scenario order.
	ErrCityIndex = errors.New("tsp: city index does not match its position")

	// ErrInvalidCost indicates that a city reported a NaN or negative travel cost.
	ErrInvalidCost = errors.New("tsp: invalid travel cost")

	// ErrNegativeAllowance indicates a negative time allowance.
	ErrNegativeAllowance = errors.New("tsp: time allowance must be non-negative")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidRoute indicates a route that is not a permutation of the cities.
	ErrInvalidRoute = errors.New("tsp: route is not a permutation of the cities")
)

// City is the collaborator contract for a single city.
//
// Index must be stable and zero-based. CostTo returns the cost of travelling
// from the receiver to other; math.Inf(1) means unreachable. Costs need not be
// symmetric. A non-nil error is propagated by the solver unchanged.
type City interface {
	Index() int
	CostTo(other City) (float64, error)
}

// Scenario provides the ordered city list. It is read once per invocation.
type Scenario interface {
	Cities() []City
}

// CityList adapts a plain slice of cities to the Scenario interface.
type CityList []City

// Cities implements Scenario.
func (l CityList) Cities() []City { return l }

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// DefaultRandom draws random tours until one is valid (baseline).
	DefaultRandom Algorithm = iota
	// BranchAndBound runs the reduced-matrix best-first search.
	BranchAndBound
)

// algorithmNames maps the CLI/config names to algorithms.
var algorithmNames = map[string]Algorithm{
	"default":          DefaultRandom,
	"branch-and-bound": BranchAndBound,
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DefaultRandom:
		return "default"
	case BranchAndBound:
		return "branch-and-bound"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves a canonical algorithm name (case-insensitive).
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// AlgorithmNames returns the accepted algorithm names (unordered).
func AlgorithmNames() map[string]Algorithm {
	out := make(map[string]Algorithm, len(algorithmNames))
	for k, v := range algorithmNames {
		out[k] = v
	}

	return out
}

// SearchStats holds the counters only the branch-and-bound search produces.
type SearchStats struct {
	// MaxQueue is the peak priority-queue size observed, the root included.
	// Children that complete the tour are priced against the BSSF on the
	// spot and never queued, so they do not count here.
	MaxQueue int
	// Total is the number of child states created, complete tours included.
	Total int
	// Pruned is the number of popped states discarded against the BSSF.
	Pruned int
	// Exhausted is true when the queue ran empty (the result is optimal);
	// false when the time allowance or the context stopped the search.
	Exhausted bool
}

// Results is the outcome of one solver invocation.
type Results struct {
	Algorithm Algorithm

	// Cost is the tour cost, math.Inf(1) when no valid tour was found.
	Cost float64

	// Elapsed is the wall-clock time spent in the invocation.
	Elapsed time.Duration

	// Count is the number of permutations tried (DefaultRandom) or the number of
	// BSSF improvements found by the search, excluding the seed (BranchAndBound).
	Count int

	// Solution is the winning tour, nil when Cost is +Inf.
	Solution *Solution

	// Search is nil for the baseline.
	Search *SearchStats
}

// Found reports whether a valid tour was produced.
func (r Results) Found() bool { return r.Solution != nil && !math.IsInf(r.Cost, 1) }

// String renders a one-line summary.
func (r Results) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "algorithm=%s cost=%s time=%s count=%d", r.Algorithm, formatCost(r.Cost), r.Elapsed, r.Count)
	if r.Search != nil {
		fmt.Fprintf(&b, " max=%d total=%d pruned=%d exhausted=%t",
			r.Search.MaxQueue, r.Search.Total, r.Search.Pruned, r.Search.Exhausted)
	}
	if r.Solution != nil {
		fmt.Fprintf(&b, " route=%v", r.Solution.Route)
	}

	return b.String()
}

func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}

	return fmt.Sprintf("%g", c)
}
