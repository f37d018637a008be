// Package tsp - unified dispatcher.
//
// Solve is the single entry point used by callers that select the algorithm
// at runtime (CLI flags, config files). It validates nothing itself: each
// solver applies the same strict sentinels.
package tsp

import (
	"context"
	"fmt"
)

// Solve routes to the solver selected by algo.
//
// Errors: ErrUnsupportedAlgorithm for unknown values, otherwise those of the
// selected solver.
func Solve(ctx context.Context, sc Scenario, algo Algorithm, opts ...Option) (Results, error) {
	switch algo {
	case DefaultRandom:
		return TSPRandomTour(ctx, sc, opts...)
	case BranchAndBound:
		return TSPBranchAndBound(ctx, sc, opts...)
	default:
		return Results{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}
