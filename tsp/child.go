package tsp

import (
	"math"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// makeChild derives the state reached by committing edge row→col from parent.
//
// The parent is never mutated: the child owns a fresh copy in which
//  1. the reverse edge col→row is blocked (no 2-cycles),
//  2. row `row` is blocked (row's city cannot be left again),
//  3. column `col` is blocked (col's city cannot be entered again),
//  4. col→start is blocked, so a mid-path city can never close the cycle early,
//
// and the copy is then reduced starting from the parent bound plus the
// committed edge cost parent(row,col).
//
// Contract: parent(row,col) is finite (callers skip +Inf candidates) and col
// is not the last unvisited city: a child that completes the tour is priced
// directly and never materialized. An out-of-range index is reported as a
// wrapped matrix.ErrOutOfRange.
//
// Complexity: O(n²) (copy + reduction).
func makeChild(parent *matrix.Dense, bound float64, row, col, start int) (*matrix.Dense, float64, error) {
	var (
		inf  = math.Inf(1)
		cost float64
		err  error
	)
	if cost, err = parent.At(row, col); err != nil {
		return nil, 0, err
	}

	m := parent.Clone()
	if err = m.Set(col, row, inf); err != nil {
		return nil, 0, err
	}
	if err = m.FillRow(row, inf); err != nil {
		return nil, 0, err
	}
	if err = m.FillCol(col, inf); err != nil {
		return nil, 0, err
	}
	if err = m.Set(col, start, inf); err != nil {
		return nil, 0, err
	}

	return m, Reduce(m, bound, cost), nil
}
