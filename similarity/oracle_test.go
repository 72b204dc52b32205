package similarity_test

import (
	"math"
	"strings"
	"testing"

	"github.com/lattice-ml/xdomain-mf/similarity"
	"github.com/stretchr/testify/require"
)

func TestMapOracleSymmetric(t *testing.T) {
	o := similarity.NewMapOracle()
	o.Set(3, 7, 0.42)

	require.InDelta(t, 0.42, o.Sim(3, 7), 1e-12)
	require.InDelta(t, 0.42, o.Sim(7, 3), 1e-12)
}

func TestMapOracleMissIsZero(t *testing.T) {
	o := similarity.NewMapOracle()
	require.Zero(t, o.Sim(1, 2))
	require.Zero(t, o.Sim(5, 5))
}

func TestMapOracleNaNDropsEntry(t *testing.T) {
	o := similarity.NewMapOracle()
	o.Set(1, 2, 0.9)
	o.Set(1, 2, math.NaN())

	require.Zero(t, o.Sim(1, 2))
}

func TestLoadParsesCanonicalPairs(t *testing.T) {
	data := "# comment\n0\t1\t0.5\n\n2\t0\t0.25\n"
	o, err := similarity.Load(strings.NewReader(data))
	require.NoError(t, err)

	require.InDelta(t, 0.5, o.Sim(1, 0), 1e-12)
	require.InDelta(t, 0.25, o.Sim(0, 2), 1e-12)
}

func TestLoadDropsNaNScore(t *testing.T) {
	o, err := similarity.Load(strings.NewReader("0\t1\tNaN\n"))
	require.NoError(t, err)
	require.Zero(t, o.Sim(0, 1))
}

func TestLoadMalformedLine(t *testing.T) {
	_, err := similarity.Load(strings.NewReader("0\t1\n"))
	require.ErrorIs(t, err, similarity.ErrMalformedLine)

	_, err = similarity.Load(strings.NewReader("a\tb\tc\n"))
	require.ErrorIs(t, err, similarity.ErrMalformedLine)
}
