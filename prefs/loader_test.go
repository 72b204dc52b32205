package prefs_test

import (
	"strings"
	"testing"

	"github.com/lattice-ml/xdomain-mf/prefs"
	"github.com/stretchr/testify/require"
)

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	data := "# header\n\nu1\ti1\nu1\ti2\n# trailing comment\nu2\ti2\n"
	idx, err := prefs.Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 3, idx.Size())
	require.True(t, idx.ExistsPreference("u2", "i2"))
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := prefs.Load(strings.NewReader("not-a-pair\n"))
	require.ErrorIs(t, err, prefs.ErrMalformedLine)
}
