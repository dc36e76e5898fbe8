package matrix_test

import (
	"testing"

	"github.com/fgindraud/slam/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}
	return d
}

func TestDenseAtSetOutOfBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 0, 4))
	require.NoError(t, d.Set(1, 1, 2))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = d.Set(0, -1, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestLUIdentity(t *testing.T) {
	d := denseFromRows(t, [][]float64{
		{1, 0},
		{0, 1},
	})
	l, u, err := matrix.LU(d)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			lv, _ := l.At(i, j)
			uv, _ := u.At(i, j)
			if i == j {
				assert.Equal(t, 1.0, lv)
				assert.Equal(t, 1.0, uv)
			} else {
				assert.Equal(t, 0.0, lv)
				assert.Equal(t, 0.0, uv)
			}
		}
	}
}

func TestLURejectsNonSquare(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = matrix.LU(d)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSolveSimpleSystem(t *testing.T) {
	// [2 0; 0 3] x = [4, 9] => x = [2, 3]
	a := denseFromRows(t, [][]float64{
		{2, 0},
		{0, 3},
	})
	x, err := matrix.Solve(a, []float64{4, 9})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 2.0, x[0], 1e-9)
	assert.InDelta(t, 3.0, x[1], 1e-9)
}

func TestSolveCoupledSystem(t *testing.T) {
	// [[3,2],[1,4]] x = [5,6]  => x = [0.8, 1.3]
	a := denseFromRows(t, [][]float64{
		{3, 2},
		{1, 4},
	})
	x, err := matrix.Solve(a, []float64{5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], 1e-9)
	assert.InDelta(t, 1.3, x[1], 1e-9)
}

func TestSolveRejectsDimensionMismatch(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = matrix.Solve(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveDetectsSingular(t *testing.T) {
	a := denseFromRows(t, [][]float64{
		{1, 1},
		{1, 1},
	})
	_, err := matrix.Solve(a, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
