package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/tsp"
)

func TestNewSolution_IncludesClosingEdge(t *testing.T) {
	sol, err := tsp.NewSolution(tableScenario(fourCities), []int{0, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 35.0, sol.Cost, "10 + 10 + 9 + closing 6")
	require.Equal(t, []int{0, 1, 3, 2, 0}, sol.Closed())
}

func TestNewSolution_UnreachableEdge(t *testing.T) {
	table := [][]float64{
		{inf, 1, 1},
		{1, inf, inf},
		{1, 1, inf},
	}
	sol, err := tsp.NewSolution(tableScenario(table), []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, math.IsInf(sol.Cost, 1))

	sol, err = tsp.NewSolution(tableScenario(table), []int{0, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 3.0, sol.Cost)
}

func TestRouteCost_OutsideMatrixIsUnreachable(t *testing.T) {
	w := mustDense(t, fourCities)
	require.True(t, math.IsInf(tsp.RouteCost(w, []int{0, 1, 7}), 1))
	require.True(t, math.IsInf(tsp.RouteCost(w, []int{-1, 2}), 1))
	require.Equal(t, 35.0, tsp.RouteCost(w, []int{0, 1, 3, 2}))
}

func TestNewSolution_SingleCity(t *testing.T) {
	sol, err := tsp.NewSolution(tableScenario([][]float64{{inf}}), []int{0})
	require.NoError(t, err)
	require.Equal(t, 0.0, sol.Cost)
	require.Equal(t, []int{0, 0}, sol.Closed())
}

func TestNewSolution_RoundsCost(t *testing.T) {
	table := [][]float64{
		{inf, 0.1, 0},
		{0, inf, 0.2},
		{0, 0, inf},
	}
	sol, err := tsp.NewSolution(tableScenario(table), []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 0.3, sol.Cost)
}

func TestNewSolution_Errors(t *testing.T) {
	cities := tableScenario(fourCities)

	_, err := tsp.NewSolution(cities, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.NewSolution(cities, []int{0, 1, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.NewSolution(cities, []int{0, 1, 2, 4})
	require.ErrorIs(t, err, tsp.ErrInvalidRoute)

	_, err = tsp.NewSolution([]tsp.City{failingCity{0}, failingCity{1}}, []int{1, 0})
	require.Equal(t, errCollaborator, err)
}

func TestRotateToStart(t *testing.T) {
	route := []int{2, 3, 0, 1}
	tsp.RotateToStart(route, 0)
	require.Equal(t, []int{0, 1, 2, 3}, route)

	route = []int{0, 2, 1}
	tsp.RotateToStart(route, 0)
	require.Equal(t, []int{0, 2, 1}, route)
}

func TestPermInto_Deterministic(t *testing.T) {
	var (
		a = make([]int, 9)
		b = make([]int, 9)
	)
	tsp.PermInto(a, tsp.RNGFromSeed(42))
	tsp.PermInto(b, tsp.RNGFromSeed(42))
	require.Equal(t, a, b)
	require.NoError(t, tsp.ValidatePermutation(a, 9))

	// Seed 0 selects the fixed default stream.
	tsp.PermInto(a, tsp.RNGFromSeed(0))
	tsp.PermInto(b, tsp.RNGFromSeed(1))
	require.Equal(t, a, b)
}
