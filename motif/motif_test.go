package motif_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watlab/hbnet/build"
	"github.com/watlab/hbnet/cluster"
	"github.com/watlab/hbnet/motif"
)

// TestLabel_CanonicalOrder pins the acceptor-before-donor letter order.
func TestLabel_CanonicalOrder(t *testing.T) {
	cases := []struct {
		in, out int
		want    string
	}{
		{0, 0, ""},
		{1, 1, "AD"},
		{2, 1, "AAD"},
		{1, 2, "ADD"},
		{2, 2, "AADD"},
		{3, 2, "AAADD"},
		{0, 2, "DD"},
		{3, 0, "AAA"},
	}
	for _, tc := range cases {
		got, err := motif.Label(tc.in, tc.out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Label(%d,%d)", tc.in, tc.out)
	}
}

// TestLabel_ShapeProperty checks length and letter counts for a grid of
// degree pairs: len = in+out, exactly in "A"s then out "D"s.
func TestLabel_ShapeProperty(t *testing.T) {
	for in := 0; in <= 4; in++ {
		for out := 0; out <= 4; out++ {
			label, err := motif.Label(in, out)
			require.NoError(t, err)
			assert.Len(t, label, in+out)
			assert.Equal(t, in, strings.Count(label, "A"))
			assert.Equal(t, out, strings.Count(label, "D"))
			assert.Equal(t, strings.Repeat("A", in), label[:in], "acceptors must come first")
		}
	}
}

// TestLabel_NegativeDegree is the only error case.
func TestLabel_NegativeDegree(t *testing.T) {
	_, err := motif.Label(-1, 0)
	assert.ErrorIs(t, err, motif.ErrNegativeDegree)

	_, err = motif.Label(0, -2)
	assert.ErrorIs(t, err, motif.ErrNegativeDegree)
}

// TestProfile_NilCluster rejects nil input.
func TestProfile_NilCluster(t *testing.T) {
	_, err := motif.Profile(nil)
	assert.ErrorIs(t, err, motif.ErrNilCluster)
}

// TestProfile_Trimer: every molecule of the cyclic trimer is an "AD".
func TestProfile_Trimer(t *testing.T) {
	bonds, err := build.Ring(3)
	require.NoError(t, err)
	c, err := cluster.New("w3", 3, -15.9, bonds)
	require.NoError(t, err)

	profile, err := motif.Profile(c)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"AD": 3}, profile)
}

// TestProfile_Prism: three "ADD" on top, three "AAD" below.
func TestProfile_Prism(t *testing.T) {
	c, err := cluster.New("prism", 6, -45.9, build.Prism())
	require.NoError(t, err)

	profile, err := motif.Profile(c)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ADD": 3, "AAD": 3}, profile)
}
