package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watlab/hbnet/rings"
	"github.com/watlab/hbnet/stats"
)

// ringRow builds a Row carrying only ring counts, for correlation tests.
func ringRow(id string, n int, counts map[int]int) stats.Row {
	r := stats.Row{ID: id, N: n, Energy: -7.6 * float64(n), HBonds: n}
	for size, count := range counts {
		r.Rings = append(r.Rings, rings.SizeCount{Size: size, Count: count})
	}

	return r
}

// TestPearson_IdenticalColumns returns exactly 1.0.
func TestPearson_IdenticalColumns(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1, 4: 1})))
	require.NoError(t, tab.Append(ringRow("b", 5, map[int]int{3: 2, 4: 2})))
	require.NoError(t, tab.Append(ringRow("c", 6, map[int]int{3: 3, 4: 3})))

	r, err := tab.Pearson("ring3", "ring4")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	// A column against itself is the degenerate case of the same identity.
	r, err = tab.Pearson("n", "n")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

// TestPearson_AntiCorrelatedColumns returns exactly -1.0.
func TestPearson_AntiCorrelatedColumns(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1, 4: 5})))
	require.NoError(t, tab.Append(ringRow("b", 5, map[int]int{3: 3, 4: 3})))
	require.NoError(t, tab.Append(ringRow("c", 6, map[int]int{3: 5, 4: 1})))

	r, err := tab.Pearson("ring3", "ring4")
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
}

// TestPearson_NotEnoughRows needs at least two observations.
func TestPearson_NotEnoughRows(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1})))

	_, err := tab.Pearson("ring3", "n")
	assert.ErrorIs(t, err, stats.ErrNotEnoughRows)
}

// TestPearson_DegenerateColumn rejects zero-variance input.
func TestPearson_DegenerateColumn(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 2})))
	require.NoError(t, tab.Append(ringRow("b", 5, map[int]int{3: 2})))

	_, err := tab.Pearson("ring3", "n")
	assert.ErrorIs(t, err, stats.ErrDegenerateColumn)
}

// TestPearson_UnknownColumn propagates ErrColumnNotFound.
func TestPearson_UnknownColumn(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1})))
	require.NoError(t, tab.Append(ringRow("b", 5, map[int]int{3: 2})))

	_, err := tab.Pearson("ring3", "volume")
	assert.ErrorIs(t, err, stats.ErrColumnNotFound)
}

// TestRingCorrelation_ShapeAndPolicy checks the 8×8 matrix: unit diagonal
// for live columns, zeroed rows for degenerate ones, symmetry throughout.
func TestRingCorrelation_ShapeAndPolicy(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1, 4: 2})))
	require.NoError(t, tab.Append(ringRow("b", 5, map[int]int{3: 2, 4: 1})))
	require.NoError(t, tab.Append(ringRow("c", 6, map[int]int{3: 3, 4: 4})))

	corr, names, err := tab.RingCorrelation()
	require.NoError(t, err)
	require.Len(t, names, 8)
	require.Len(t, corr, 8)
	assert.Equal(t, "ring3", names[0])
	assert.Equal(t, "ring10", names[7])

	// ring3 and ring4 vary: unit diagonal.
	assert.InDelta(t, 1.0, corr[0][0], 1e-12)
	assert.InDelta(t, 1.0, corr[1][1], 1e-12)

	// ring5..ring10 are all-zero columns: zeroed, diagonal included.
	for i := 2; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Zero(t, corr[i][j], "corr[%d][%d]", i, j)
		}
	}

	// Symmetry.
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, corr[i][j], corr[j][i])
		}
	}
}

// TestRingCorrelation_NotEnoughRows needs at least two rows.
func TestRingCorrelation_NotEnoughRows(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(ringRow("a", 4, map[int]int{3: 1})))

	_, _, err := tab.RingCorrelation()
	assert.ErrorIs(t, err, stats.ErrNotEnoughRows)
}

// TestNormalize_PerMoleculeAndPerBond divides columns row-wise.
func TestNormalize_PerMoleculeAndPerBond(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(row("a", 4, -10.0, 5)))
	require.NoError(t, tab.Append(row("b", 5, -20.0, 8)))

	perMol, err := tab.NormalizePerMolecule("energy")
	require.NoError(t, err)
	assert.InDelta(t, -2.5, perMol[0], 1e-12)
	assert.InDelta(t, -4.0, perMol[1], 1e-12)

	perBond, err := tab.NormalizePerBond("energy")
	require.NoError(t, err)
	assert.InDelta(t, -2.0, perBond[0], 1e-12)
	assert.InDelta(t, -2.5, perBond[1], 1e-12)
}

// TestNormalize_ZeroMolecules rejects n=0 with ErrInvalidCluster instead of
// producing Inf or NaN.
func TestNormalize_ZeroMolecules(t *testing.T) {
	tab := stats.NewTable()
	require.NoError(t, tab.Append(row("empty", 0, 0.0, 0)))

	_, err := tab.NormalizePerMolecule("energy")
	assert.ErrorIs(t, err, stats.ErrInvalidCluster)

	_, err = tab.NormalizePerBond("energy")
	assert.ErrorIs(t, err, stats.ErrInvalidCluster)
}
