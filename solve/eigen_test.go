package solve_test

import (
	"math"
	"testing"

	"github.com/lattice-ml/xdomain-mf/solve"
	"github.com/stretchr/testify/require"
)

func TestEigenRejectsAsymmetric(t *testing.T) {
	a := [][]float64{{1, 2}, {0, 1}}
	_, _, err := solve.Eigen(a, solve.DefaultEigenTol, solve.DefaultEigenMaxIter)
	require.ErrorIs(t, err, solve.ErrNotSymmetric)
}

func TestEigenDiagonal(t *testing.T) {
	a := [][]float64{{3, 0}, {0, 5}}
	eigenvalues, _, err := solve.Eigen(a, solve.DefaultEigenTol, solve.DefaultEigenMaxIter)
	require.NoError(t, err)
	require.ElementsMatch(t, []float64{3, 5}, eigenvalues)
}

func TestGMatrixReconstructsInput(t *testing.T) {
	// A symmetric positive-definite 3x3 matrix.
	a := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	g, err := solve.GMatrix(a, solve.DefaultEigenTol, solve.DefaultEigenMaxIter)
	require.NoError(t, err)

	n := len(a)
	// G^T * G must reconstruct a within a tight tolerance.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += g[k][i] * g[k][j]
			}
			require.True(t, math.Abs(sum-a[i][j]) < 1e-6, "GtG[%d][%d] = %v, want %v", i, j, sum, a[i][j])
		}
	}
}
