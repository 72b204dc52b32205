package numeric_test

import (
	"testing"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	got, err := numeric.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, got)
}

func TestDotLengthMismatch(t *testing.T) {
	_, err := numeric.Dot([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, numeric.ErrLengthMismatch)
}

func TestAddScaled(t *testing.T) {
	target := []float64{1, 1, 1}
	require.NoError(t, numeric.AddScaled(target, []float64{1, 2, 3}, 2))
	require.Equal(t, []float64{3, 5, 7}, target)
}

func TestSqL2(t *testing.T) {
	require.Equal(t, 25.0, numeric.SqL2([]float64{3, 4}))
}

func TestSqDistance(t *testing.T) {
	d, err := numeric.SqDistance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 25.0, d)
}

func TestSqL2Matrix(t *testing.T) {
	require.Equal(t, 25.0+4.0, numeric.SqL2Matrix([][]float64{{3, 4}, {2}}))
}
