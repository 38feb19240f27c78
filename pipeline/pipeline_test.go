package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watlab/hbnet/build"
	"github.com/watlab/hbnet/catalog"
	"github.com/watlab/hbnet/cluster"
	"github.com/watlab/hbnet/pipeline"
	"github.com/watlab/hbnet/rings"
	"github.com/watlab/hbnet/stats"
)

// fixtureClusters returns a small mixed dataset: trimer, book, prism.
func fixtureClusters(t *testing.T) []*cluster.Cluster {
	t.Helper()

	trimerBonds, err := build.Ring(3)
	require.NoError(t, err)
	trimer, err := cluster.New("w3", 3, -15.9, trimerBonds)
	require.NoError(t, err)

	book, err := cluster.New("book", 6, -45.6, build.Book())
	require.NoError(t, err)

	prism, err := cluster.New("prism", 6, -45.9, build.Prism())
	require.NoError(t, err)

	return []*cluster.Cluster{trimer, book, prism}
}

// TestRun_AggregatesAllClusters produces one row per cluster in input order.
func TestRun_AggregatesAllClusters(t *testing.T) {
	table, report, err := pipeline.Run(context.Background(), fixtureClusters(t))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Zero(t, report.Skipped)
	assert.Empty(t, report.Exclusions)

	rows := table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"w3", "book", "prism"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})

	// Spot-check the aggregation against known fixture properties.
	w3, ok := table.Row("w3")
	require.True(t, ok)
	assert.Equal(t, 3, w3.HBonds)
	assert.Equal(t, 1, w3.Rings.Of(3))
	assert.Equal(t, map[string]int{"AD": 3}, w3.Motifs)

	prism, ok := table.Row("prism")
	require.True(t, ok)
	assert.Equal(t, 9, prism.HBonds)
	assert.Equal(t, 2, prism.Rings.Of(3))
	assert.Equal(t, 3, prism.Rings.Of(4))
}

// TestRun_SkipsAndReports excludes a nil entry and a duplicate ID while the
// healthy clusters still land in the table.
func TestRun_SkipsAndReports(t *testing.T) {
	clusters := fixtureClusters(t)

	dupBonds, err := build.Ring(4)
	require.NoError(t, err)
	dup, err := cluster.New("w3", 4, -27.4, dupBonds) // same ID as the trimer
	require.NoError(t, err)

	clusters = append(clusters, nil, dup)

	table, report, err := pipeline.Run(context.Background(), clusters)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, report.Exclusions, 2)
	assert.ErrorIs(t, report.Exclusions[0].Err, cluster.ErrDataIntegrity) // the nil entry
	assert.ErrorIs(t, report.Exclusions[1].Err, stats.ErrDuplicateID)    // the colliding ID
	assert.Equal(t, "w3", report.Exclusions[1].ID)
	assert.Equal(t, 3, table.Len())
}

// TestRun_SingleWorkerMatchesParallel: worker count must not change output.
func TestRun_SingleWorkerMatchesParallel(t *testing.T) {
	serial, _, err := pipeline.Run(context.Background(), fixtureClusters(t), pipeline.WithWorkers(1))
	require.NoError(t, err)

	parallel, _, err := pipeline.Run(context.Background(), fixtureClusters(t), pipeline.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, serial.Rows(), parallel.Rows())
}

// TestRun_BadRingBoundFailsFast rejects an invalid option before analyzing.
func TestRun_BadRingBoundFailsFast(t *testing.T) {
	_, _, err := pipeline.Run(context.Background(), fixtureClusters(t), pipeline.WithMaxRingSize(2))
	assert.ErrorIs(t, err, rings.ErrRingSizeOutOfRange)
}

// TestRun_CancelledContext aborts the whole run.
func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := pipeline.Run(ctx, fixtureClusters(t))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_PersistsToCatalog writes every computed row into the catalog.
func TestRun_PersistsToCatalog(t *testing.T) {
	cat, err := catalog.Open(catalog.Opts{})
	require.NoError(t, err)
	defer cat.Close()

	_, report, err := pipeline.Run(context.Background(), fixtureClusters(t), pipeline.WithCatalog(cat))
	require.NoError(t, err)
	require.Equal(t, 3, report.Processed)

	stored, err := cat.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	row, err := cat.Get("prism")
	require.NoError(t, err)
	assert.Equal(t, 9, row.HBonds)
}

// TestRun_EmptyDataset yields an empty table and a clean report.
func TestRun_EmptyDataset(t *testing.T) {
	table, report, err := pipeline.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, table.Len())
	assert.Zero(t, report.Processed)
	assert.Zero(t, report.Skipped)
}
