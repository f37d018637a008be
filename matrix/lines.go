// SPDX-License-Identifier: MIT

// Package matrix - whole-row / whole-column kernels.
//
// These are the primitives behind cost-matrix reduction and edge blocking.
// Exported kernels bounds-check their line index once and then hand over to
// the unchecked private kernels, which walk the flat buffer directly
// (stride 1 for rows, stride c for columns). Whole-matrix operations
// (ReduceCols, ReduceRows, HasBlockedLine) only visit valid lines and so
// cannot fail.
//
// Determinism:
//   - Fixed ascending loop order; no allocation.

package matrix

import (
	"math"
)

// FillRow sets every cell of row i to v.
//
// Errors: ErrOutOfRange (wrapped), ErrNaN (wrapped).
// Complexity: O(c).
func (m *Dense) FillRow(i int, v float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxFillRow, i, 0, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxFillRow, i, 0, ErrNaN)
	}
	var (
		row = m.data[i*m.c : (i+1)*m.c]
		j   int
	)
	for j = range row {
		row[j] = v
	}

	return nil
}

// FillCol sets every cell of column j to v.
//
// Errors: ErrOutOfRange (wrapped), ErrNaN (wrapped).
// Complexity: O(r).
func (m *Dense) FillCol(j int, v float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxFillCol, 0, j, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxFillCol, 0, j, ErrNaN)
	}
	var off int
	for off = j; off < len(m.data); off += m.c {
		m.data[off] = v
	}

	return nil
}

// RowMin returns the smallest value in row i (+Inf when the row is fully blocked).
//
// Errors: ErrOutOfRange (wrapped).
// Complexity: O(c).
func (m *Dense) RowMin(i int) (float64, error) {
	if i < 0 || i >= m.r {
		return 0, denseErrorf(ctxRowMin, i, 0, ErrOutOfRange)
	}

	return m.rowMin(i), nil
}

// ColMin returns the smallest value in column j (+Inf when the column is fully blocked).
//
// Errors: ErrOutOfRange (wrapped).
// Complexity: O(r).
func (m *Dense) ColMin(j int) (float64, error) {
	if j < 0 || j >= m.c {
		return 0, denseErrorf(ctxColMin, 0, j, ErrOutOfRange)
	}

	return m.colMin(j), nil
}

// ReduceCols subtracts every column's minimum from that column and returns
// the sum of the subtracted minima. Fully blocked columns (minimum +Inf)
// are skipped, so the result is finite and +Inf cells stay +Inf.
//
// Contract: m holds no -Inf.
// Complexity: O(r*c).
func (m *Dense) ReduceCols() float64 {
	var (
		sum float64
		lo  float64
		j   int
	)
	for j = 0; j < m.c; j++ {
		if lo = m.colMin(j); math.IsInf(lo, 1) {
			continue
		}
		sum += lo
		m.subCol(j, lo)
	}

	return sum
}

// ReduceRows is ReduceCols for rows.
// Complexity: O(r*c).
func (m *Dense) ReduceRows() float64 {
	var (
		sum float64
		lo  float64
		i   int
	)
	for i = 0; i < m.r; i++ {
		if lo = m.rowMin(i); math.IsInf(lo, 1) {
			continue
		}
		sum += lo
		m.subRow(i, lo)
	}

	return sum
}

// HasBlockedLine reports whether some row or column holds only +Inf.
// Complexity: O(r*c).
func (m *Dense) HasBlockedLine() bool {
	var k int
	for k = 0; k < m.r; k++ {
		if math.IsInf(m.rowMin(k), 1) {
			return true
		}
	}
	for k = 0; k < m.c; k++ {
		if math.IsInf(m.colMin(k), 1) {
			return true
		}
	}

	return false
}

// rowMin is RowMin without the bounds check.
func (m *Dense) rowMin(i int) float64 {
	var (
		lo = math.Inf(1)
		v  float64
	)
	for _, v = range m.data[i*m.c : (i+1)*m.c] {
		if v < lo {
			lo = v
		}
	}

	return lo
}

// colMin is ColMin without the bounds check.
func (m *Dense) colMin(j int) float64 {
	var (
		lo  = math.Inf(1)
		off int
	)
	for off = j; off < len(m.data); off += m.c {
		if m.data[off] < lo {
			lo = m.data[off]
		}
	}

	return lo
}

// subRow subtracts a finite d from row i; +Inf cells stay +Inf.
func (m *Dense) subRow(i int, d float64) {
	var (
		row = m.data[i*m.c : (i+1)*m.c]
		j   int
	)
	for j = range row {
		row[j] -= d
	}
}

// subCol subtracts a finite d from column j; +Inf cells stay +Inf.
func (m *Dense) subCol(j int, d float64) {
	var off int
	for off = j; off < len(m.data); off += m.c {
		m.data[off] -= d
	}
}
