package solve_test

import (
	"math"
	"testing"

	"github.com/lattice-ml/xdomain-mf/solve"
	"github.com/stretchr/testify/require"
)

func TestSolveIdentity(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	x, err := solve.Solve(a, []float64{3, 4})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 4}, x, 1e-9)
}

func TestSolveGeneral(t *testing.T) {
	// 2x + y = 5, x + 3y = 10 -> x=1, y=3
	a := [][]float64{{2, 1}, {1, 3}}
	x, err := solve.Solve(a, []float64{5, 10})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], 1e-9)
	require.InDelta(t, 3.0, x[1], 1e-9)
}

func TestSolveSingular(t *testing.T) {
	a := [][]float64{{0, 0}, {0, 0}}
	_, err := solve.Solve(a, []float64{1, 1})
	require.ErrorIs(t, err, solve.ErrSingular)
}

func TestSolveDimensionMismatch(t *testing.T) {
	_, err := solve.Solve([][]float64{{1}}, []float64{1, 2})
	require.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

func TestLUReconstructsInput(t *testing.T) {
	a := [][]float64{{4, 3}, {6, 3}}
	l, u, err := solve.LU(a)
	require.NoError(t, err)

	n := len(a)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += l[i][k] * u[k][j]
			}
			require.True(t, math.Abs(sum-a[i][j]) < 1e-9, "L*U[%d][%d] = %v, want %v", i, j, sum, a[i][j])
		}
	}
}
