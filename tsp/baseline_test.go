package tsp_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/tsp"
)

func TestTSPRandomTour_FindsValidTour(t *testing.T) {
	res, err := tsp.TSPRandomTour(context.Background(), tableScenario(fourCities), tsp.WithSeed(5))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, tsp.DefaultRandom, res.Algorithm)
	require.GreaterOrEqual(t, res.Count, 1)
	require.Nil(t, res.Search, "the baseline carries no search statistics")
	requireValidTour(t, fourCities, res.Solution)
	require.Equal(t, res.Solution.Cost, res.Cost)
}

func TestTSPRandomTour_Deterministic(t *testing.T) {
	table := withCycle(randomTable(9, 0.2, 17))
	a, err := tsp.TSPRandomTour(context.Background(), tableScenario(table), tsp.WithSeed(3))
	require.NoError(t, err)
	b, err := tsp.TSPRandomTour(context.Background(), tableScenario(table), tsp.WithSeed(3))
	require.NoError(t, err)

	require.Equal(t, a.Count, b.Count)
	require.Equal(t, a.Solution, b.Solution)
}

func TestTSPRandomTour_ProvablyInfeasible(t *testing.T) {
	table := [][]float64{
		{inf, 1, 1, inf},
		{1, inf, 1, inf},
		{1, 1, inf, inf},
		{1, 1, 1, inf},
	}
	res, err := tsp.TSPRandomTour(context.Background(), tableScenario(table))
	require.NoError(t, err, "no tour is not an error")
	require.True(t, math.IsInf(res.Cost, 1))
	require.Nil(t, res.Solution)
	require.Equal(t, 1, res.Count, "a dead end stops the generator after one draw")
	require.False(t, res.Found())
}

func TestTSPRandomTour_ZeroAllowanceDrawsOnce(t *testing.T) {
	// Only the cycle 0→1→…→7→0 exists.
	var (
		n     = 8
		table = make([][]float64, n)
		i, j  int
	)
	for i = 0; i < n; i++ {
		table[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			table[i][j] = inf
		}
		table[i][(i+1)%n] = 1
	}

	res, err := tsp.TSPRandomTour(context.Background(), tableScenario(table), tsp.WithTimeAllowance(0))
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	if res.Found() {
		require.Equal(t, float64(n), res.Cost)
	}
}

func TestTSPRandomTour_CancelledContextDrawsOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tsp.TSPRandomTour(ctx, tableScenario(fourCities), tsp.WithTimeAllowance(time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.True(t, res.Found(), "every permutation of a complete instance is valid")
}

func TestTSPRandomTour_Degenerate(t *testing.T) {
	res, err := tsp.TSPRandomTour(context.Background(), tsp.CityList{})
	require.NoError(t, err)
	require.True(t, math.IsInf(res.Cost, 1))
	require.Nil(t, res.Solution)
	require.Zero(t, res.Count)

	res, err = tsp.TSPRandomTour(context.Background(), tableScenario([][]float64{{inf}}))
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Cost)
	require.Equal(t, []int{0}, res.Solution.Route)
}

func TestTSPRandomTour_Errors(t *testing.T) {
	_, err := tsp.TSPRandomTour(context.Background(), nil)
	require.ErrorIs(t, err, tsp.ErrNilScenario)

	_, err = tsp.TSPRandomTour(context.Background(), tableScenario(fourCities), tsp.WithTimeAllowance(-time.Second))
	require.ErrorIs(t, err, tsp.ErrNegativeAllowance)

	_, err = tsp.TSPRandomTour(context.Background(), tsp.CityList{failingCity{0}, failingCity{1}})
	require.Equal(t, errCollaborator, err)
}
