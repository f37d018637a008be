package tsp

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// TSPRandomTour is the baseline solver: it draws uniformly random permutations
// until one has a finite cost or the time allowance expires, and returns the
// first valid tour (not the best of many).
//
// At least one permutation is drawn even with a zero allowance. When the cost
// matrix proves that no tour exists (a city with no finite outgoing or
// incoming edge) the generator stops after that first draw.
//
// Results.Count is the number of permutations tried; Results.Search is nil.
// Failure to find a tour is reported as Cost=+Inf with a nil Solution.
//
// Errors: ErrNilScenario, ErrCityIndex, ErrInvalidCost, ErrNegativeAllowance,
// or the collaborator's own error, unchanged.
func TSPRandomTour(ctx context.Context, sc Scenario, opts ...Option) (Results, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Results{}, err
	}
	var started = time.Now()

	cities, err := scenarioCities(sc)
	if err != nil {
		return Results{}, err
	}
	w, err := BuildCostMatrix(cities)
	if err != nil {
		return Results{}, err
	}

	res := Results{Algorithm: DefaultRandom, Cost: math.Inf(1)}
	if w != nil {
		sol, draws := drawBaseline(ctx, w, rngFromSeed(cfg.Seed), started.Add(cfg.TimeAllowance), startCity)
		res.Count = draws
		if sol != nil {
			res.Cost = sol.Cost
			res.Solution = sol
		}
	}
	res.Elapsed = time.Since(started)

	cfg.Logger.WithFields(resultFields(res)).Info("random tour finished")

	return res, nil
}

// drawBaseline samples permutations of the cities of w until one is valid.
// It returns the tour rotated to start at start (nil if none was found) and
// the number of draws. w must be non-nil.
//
// Complexity: O(n) per draw; the number of draws is bounded only by the deadline.
func drawBaseline(ctx context.Context, w *matrix.Dense, rng *rand.Rand, deadline time.Time, start int) (*Solution, int) {
	var (
		n          = w.Rows()
		perm       = make([]int, n)
		infeasible = deadEnd(w)
		draws      int
		c          float64
	)
	for {
		permInto(perm, rng)
		draws++
		if c = routeCost(w, perm); !math.IsInf(c, 1) {
			route := copyRoute(perm)
			rotateToStart(route, start)

			return &Solution{Route: route, Cost: c}, draws
		}
		if infeasible || !time.Now().Before(deadline) || ctx.Err() != nil {
			return nil, draws
		}
	}
}

// scenarioCities reads the city list once, rejecting a nil scenario.
func scenarioCities(sc Scenario) ([]City, error) {
	if sc == nil {
		return nil, ErrNilScenario
	}

	return sc.Cities(), nil
}
