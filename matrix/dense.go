// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Numeric policy:
//   - ±Inf is stored verbatim (the solver uses +Inf for blocked edges).
//   - NaN is rejected by Set and by the constructors.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxFillRow = "FillRow" // line kernel tags
	ctxFillCol = "FillCol"
	ctxRowMin  = "RowMin"
	ctxColMin  = "ColMin"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "∞"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// newDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func newDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n matrix with every cell set to fill.
//
// Errors:
//   - ErrInvalidDimensions if n<=0.
//   - ErrNaN if fill is NaN.
//
// Complexity: Time O(n²), Space O(n²).
func NewSquare(n int, fill float64) (*Dense, error) {
	if math.IsNaN(fill) {
		return nil, ErrNaN
	}
	m, err := newDense(n, n)
	if err != nil {
		return nil, err
	}
	if fill != 0 {
		var k int
		for k = range m.data {
			m.data[k] = fill
		}
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions for an empty source or empty first row.
//   - ErrRagged if rows differ in length.
//   - ErrNaN (wrapped with coordinates) for any NaN cell.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(a [][]float64) (*Dense, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := newDense(len(a), len(a[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(a[i]) != m.c {
			return nil, ErrRagged
		}
		for j = 0; j < m.c; j++ {
			if math.IsNaN(a[i][j]) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaN)
			}
			m.data[i*m.c+j] = a[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare sentinel; public methods wrap it with their context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaN for NaN values.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy backed by a new buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer; +Inf cells print as "∞".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
		v    float64
	)
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			if math.IsInf(v, 1) {
				b.WriteString(_fmtInf)
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
			if j < m.c-1 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
