package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bnbtsp/matrix"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

func mustRows(t *testing.T, a [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(a)
	require.NoError(t, err)

	return m
}

func TestFillRowCol(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, m.FillRow(1, inf))
	require.NoError(t, m.FillCol(2, inf))
	require.Equal(t, "[1, 2, ∞]\n[∞, ∞, ∞]\n[7, 8, ∞]\n", m.String())

	require.ErrorIs(t, m.FillRow(3, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillCol(-1, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillRow(0, math.NaN()), matrix.ErrNaN)
}

func TestRowColMin(t *testing.T) {
	m := mustRows(t, [][]float64{
		{inf, 10, 15},
		{5, inf, 9},
		{inf, inf, inf},
	})

	lo, err := m.RowMin(0)
	require.NoError(t, err)
	require.Equal(t, 10.0, lo)

	lo, err = m.RowMin(2)
	require.NoError(t, err)
	require.True(t, math.IsInf(lo, 1), "fully blocked row has +Inf minimum")

	lo, err = m.ColMin(2)
	require.NoError(t, err)
	require.Equal(t, 9.0, lo)

	_, err = m.ColMin(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestReduceColsRows(t *testing.T) {
	m := mustRows(t, [][]float64{
		{inf, 10, 15},
		{5, inf, 9},
		{6, 13, inf},
	})
	require.Equal(t, 24.0, m.ReduceCols())
	require.Equal(t, "[∞, 0, 6]\n[0, ∞, 0]\n[1, 3, ∞]\n", m.String())

	require.Equal(t, 1.0, m.ReduceRows())
	require.Equal(t, "[∞, 0, 6]\n[0, ∞, 0]\n[0, 2, ∞]\n", m.String())

	require.Zero(t, m.ReduceCols(), "a reduced matrix has nothing left to subtract")
	require.Zero(t, m.ReduceRows())
}

func TestReduceSkipsBlockedLines(t *testing.T) {
	m := mustRows(t, [][]float64{
		{inf, inf},
		{inf, 4},
	})
	require.Equal(t, 4.0, m.ReduceCols())
	require.Zero(t, m.ReduceRows())
	require.Equal(t, "[∞, ∞]\n[∞, 0]\n", m.String())
}

func TestHasBlockedLine(t *testing.T) {
	require.False(t, mustRows(t, [][]float64{{inf, 1}, {1, inf}}).HasBlockedLine())
	require.True(t, mustRows(t, [][]float64{{inf, inf}, {1, inf}}).HasBlockedLine(), "row 0 has no exit")
	require.True(t, mustRows(t, [][]float64{{1, inf}, {1, inf}}).HasBlockedLine(), "column 1 has no entry")
}
