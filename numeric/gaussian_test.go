package numeric_test

import (
	"testing"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/stretchr/testify/require"
)

func TestMakeGaussianMatrixDeterministic(t *testing.T) {
	a, err := numeric.MakeGaussianMatrix(4, 3, 0, 0.1, numeric.NewSeededRNG(numeric.DefaultSeed))
	require.NoError(t, err)
	b, err := numeric.MakeGaussianMatrix(4, 3, 0, 0.1, numeric.NewSeededRNG(numeric.DefaultSeed))
	require.NoError(t, err)

	require.Equal(t, a, b, "identical seed must produce identical factors")
}

func TestMakeGaussianMatrixShape(t *testing.T) {
	m, err := numeric.MakeGaussianMatrix(5, 2, 0, 0.1, numeric.NewSeededRNG(1))
	require.NoError(t, err)
	require.Len(t, m, 5)
	for _, row := range m {
		require.Len(t, row, 2)
	}
}

func TestFillGaussianRejectsNonPositiveStdDev(t *testing.T) {
	m := [][]float64{{0}}
	err := numeric.FillGaussian(m, 0, 0, numeric.NewSeededRNG(1))
	require.ErrorIs(t, err, numeric.ErrNonPositiveStdDev)
}
