// Package tsp_test holds the shared fixtures of the tsp tests: a table-backed
// City implementation, a failing collaborator and a reference brute-force
// solver used to cross-check the search on small instances.
package tsp_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnbtsp/matrix"
	"github.com/katalvlaran/bnbtsp/tsp"
)

var inf = math.Inf(1)

// errCollaborator is the sentinel reported by failingCity.
var errCollaborator = errors.New("collaborator: lookup failed")

// fourCities is the asymmetric 4-city instance with optimal tour [0 1 3 2], cost 35.
var fourCities = [][]float64{
	{inf, 10, 15, 20},
	{5, inf, 9, 10},
	{6, 13, inf, 12},
	{8, 8, 9, inf},
}

// tableCity answers CostTo from a shared cost table.
type tableCity struct {
	i     int
	table [][]float64
}

var _ tsp.City = tableCity{}

func (c tableCity) Index() int { return c.i }

func (c tableCity) CostTo(other tsp.City) (float64, error) {
	return c.table[c.i][other.Index()], nil
}

// failingCity reports errCollaborator for every lookup.
type failingCity struct{ i int }

func (c failingCity) Index() int { return c.i }

func (c failingCity) CostTo(tsp.City) (float64, error) { return 0, errCollaborator }

// tableScenario wraps a cost table as a Scenario.
func tableScenario(table [][]float64) tsp.CityList {
	out := make(tsp.CityList, len(table))
	var i int
	for i = range table {
		out[i] = tableCity{i: i, table: table}
	}

	return out
}

// mustDense builds a *matrix.Dense from rows or fails the test.
func mustDense(t *testing.T, a [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(a)
	require.NoError(t, err)

	return m
}

// randomTable returns an n×n integer cost table in [1, 100]; each off-diagonal
// edge is removed (+Inf) with probability holes.
func randomTable(n int, holes float64, seed int64) [][]float64 {
	var (
		rng  = rand.New(rand.NewSource(seed))
		out  = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				out[i][j] = inf
			case rng.Float64() < holes:
				out[i][j] = inf
			default:
				out[i][j] = float64(1 + rng.Intn(100))
			}
		}
	}

	return out
}

// withCycle makes the edges i→i+1 (and n-1→0) finite so that table is
// guaranteed to have a tour; random draws then terminate quickly.
func withCycle(table [][]float64) [][]float64 {
	var (
		n = len(table)
		i int
	)
	for i = 0; i < n && n > 1; i++ {
		if math.IsInf(table[i][(i+1)%n], 1) {
			table[i][(i+1)%n] = 50
		}
	}

	return table
}

// bruteForce returns the optimal tour cost for table by enumerating every
// permutation that starts at city 0 (+Inf when no tour exists).
func bruteForce(table [][]float64) float64 {
	var n = len(table)
	if n == 0 {
		return inf
	}
	if n == 1 {
		return 0
	}

	var (
		best    = inf
		route   = make([]int, n)
		used    = make([]bool, n)
		recurse func(depth int, acc float64)
	)
	used[0] = true
	recurse = func(depth int, acc float64) {
		if acc >= best {
			return
		}
		if depth == n {
			if c := acc + table[route[n-1]][0]; c < best {
				best = c
			}
			return
		}
		var next int
		for next = 1; next < n; next++ {
			if used[next] || math.IsInf(table[route[depth-1]][next], 1) {
				continue
			}
			used[next] = true
			route[depth] = next
			recurse(depth+1, acc+table[route[depth-1]][next])
			used[next] = false
		}
	}
	recurse(1, 0)

	return best
}

// requireValidTour checks that sol is a permutation starting at city 0 whose
// reported cost matches table.
func requireValidTour(t *testing.T, table [][]float64, sol *tsp.Solution) {
	t.Helper()
	require.NotNil(t, sol)
	require.NoError(t, tsp.ValidatePermutation(sol.Route, len(table)))
	require.Equal(t, 0, sol.Route[0], "tours are rotated to start at city 0")
	require.Equal(t, tsp.RouteCost(mustDense(t, table), sol.Route), sol.Cost)
}
