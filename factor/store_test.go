package factor_test

import (
	"math"
	"testing"

	"github.com/lattice-ml/xdomain-mf/factor"
	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	s, err := factor.New(3, 5, 2, 0, 0.1, numeric.NewSeededRNG(1))
	require.NoError(t, err)
	require.Len(t, s.U, 3)
	require.Len(t, s.V, 5)
	for _, row := range s.U {
		require.Len(t, row, 2)
	}
}

func TestNewRejectsBadShape(t *testing.T) {
	_, err := factor.New(0, 5, 2, 0, 0.1, numeric.NewSeededRNG(1))
	require.ErrorIs(t, err, factor.ErrInvalidDimensions)
}

func TestPredictUnknownIsNaN(t *testing.T) {
	s, err := factor.New(2, 2, 2, 0, 0.1, numeric.NewSeededRNG(1))
	require.NoError(t, err)
	require.True(t, math.IsNaN(s.Predict(-1, 0)))
	require.True(t, math.IsNaN(s.Predict(0, 99)))
}

func TestPredictConsistency(t *testing.T) {
	s, err := factor.New(2, 2, 2, 0, 0.1, numeric.NewSeededRNG(1))
	require.NoError(t, err)
	want, err := numeric.Dot(s.U[0], s.V[1])
	require.NoError(t, err)
	require.Equal(t, want, s.Predict(0, 1))
}
