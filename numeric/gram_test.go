package numeric_test

import (
	"testing"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/stretchr/testify/require"
)

func TestMaskedGramSymmetry(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	}
	out, err := numeric.NewSquareMatrix(2)
	require.NoError(t, err)

	require.NoError(t, numeric.MaskedGram(a, func(int) bool { return true }, out))

	for i := range out {
		for j := range out[i] {
			require.Equal(t, out[i][j], out[j][i], "G[%d][%d] != G[%d][%d]", i, j, j, i)
		}
	}
	// G = A^T A for the full 3x2 matrix above.
	require.Equal(t, 1.0+9.0+25.0, out[0][0])
	require.Equal(t, 4.0+16.0+36.0, out[1][1])
	require.Equal(t, 2.0+12.0+30.0, out[0][1])
}

func TestMaskedGramPredicate(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	out, err := numeric.NewSquareMatrix(2)
	require.NoError(t, err)

	// Only include row 2 ({1,1}).
	require.NoError(t, numeric.MaskedGram(a, func(k int) bool { return k == 2 }, out))
	require.Equal(t, 1.0, out[0][0])
	require.Equal(t, 1.0, out[0][1])
	require.Equal(t, 1.0, out[1][1])
}

func TestAddRidge(t *testing.T) {
	m, err := numeric.NewSquareMatrix(2)
	require.NoError(t, err)
	require.NoError(t, numeric.AddRidge(m, 0.5))
	require.Equal(t, 0.5, m[0][0])
	require.Equal(t, 0.5, m[1][1])
	require.Equal(t, 0.0, m[0][1])
}
