// Package tsp — reduced cost matrix bound.
//
// Reduction is the admissible lower bound of the search: every city that is
// still to be left must pay at least its row minimum and every city that is
// still to be entered must pay at least its column minimum. Subtracting those
// minima and adding them to the bound keeps the accounting exact, so the
// reduced matrix always has a zero in every non-blocked row and column.
package tsp

import "github.com/katalvlaran/bnbtsp/matrix"

// Reduce performs column reduction then row reduction on m in place, and
// returns lower + (sum of subtracted minima) + cost, where cost is the
// committed edge that produced m.
//
// Fully blocked lines (minimum +Inf) contribute nothing and are left as-is,
// so the bound never decreases for non-negative inputs.
//
// Contract: m is non-nil and holds no NaN and no -Inf.
//
// Complexity: O(r·c) time, O(1) extra space.
func Reduce(m *matrix.Dense, lower, cost float64) float64 {
	// Columns first: every remaining city must be arrived at once.
	lower += m.ReduceCols()
	// Rows: every remaining city must be departed from once.
	lower += m.ReduceRows()

	return lower + cost
}
