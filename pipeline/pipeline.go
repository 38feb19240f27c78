// This file implements the parallel analysis run.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/watlab/hbnet/cluster"
	"github.com/watlab/hbnet/motif"
	"github.com/watlab/hbnet/rings"
	"github.com/watlab/hbnet/stats"
)

// Exclusion records one cluster excluded from the aggregated table.
type Exclusion struct {
	// ID is the excluded cluster's identifier ("" for a nil entry).
	ID string

	// Err is the reason, branchable with errors.Is (cluster.ErrDataIntegrity,
	// stats.ErrDuplicateID, ...).
	Err error
}

// Report summarizes a run: how many clusters made it into the table and
// which were skipped. It accompanies every successful Run result.
type Report struct {
	// Processed is the number of rows in the resulting table.
	Processed int

	// Skipped is the number of excluded clusters (== len(Exclusions)).
	Skipped int

	// Exclusions lists each skipped cluster with its reason, in input order.
	Exclusions []Exclusion
}

// result is one worker's output slot.
type result struct {
	row stats.Row
	err error
}

// Run analyzes every cluster and aggregates the results into a table.
//
// Per-cluster failures (malformed records, duplicate IDs) exclude only the
// affected cluster and are reported; the run continues. Run itself fails
// only on invalid options, context cancellation, or catalog I/O errors.
// The table's row order follows the input order.
func Run(ctx context.Context, clusters []*cluster.Cluster, opts ...Option) (*stats.Table, Report, error) {
	// 1) Resolve options; surface a bad ring bound once, up front, instead
	//    of as one exclusion per cluster.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateRingOpts(cfg.ringOpts); err != nil {
		return nil, Report{}, err
	}

	// 2) Fan out: each worker owns exactly one slot, so there is no shared
	//    mutable state and no locking.
	slots := make([]result, len(clusters))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, c := range clusters {
		i, c := i, c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			slots[i] = analyze(c, cfg.ringOpts)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Report{}, fmt.Errorf("pipeline: run aborted: %w", err)
	}

	// 3) Assemble the table in input order, collecting exclusions.
	table := stats.NewTable()
	var report Report
	for i, slot := range slots {
		if slot.err == nil {
			slot.err = table.Append(slot.row)
		}
		if slot.err != nil {
			cfg.logger.Warn("excluding cluster",
				zap.Int("index", i),
				zap.String("id", slot.row.ID),
				zap.Error(slot.err))
			report.Exclusions = append(report.Exclusions, Exclusion{ID: slot.row.ID, Err: slot.err})
			continue
		}

		// 4) Optional persistence. Catalog failures are infrastructure, not
		//    data, so they abort the run.
		if cfg.cat != nil {
			if err := cfg.cat.Put(slot.row); err != nil {
				return nil, Report{}, fmt.Errorf("pipeline: persisting row %q: %w", slot.row.ID, err)
			}
		}
	}

	report.Processed = table.Len()
	report.Skipped = len(report.Exclusions)
	cfg.logger.Info("analysis complete",
		zap.Int("processed", report.Processed),
		zap.Int("skipped", report.Skipped))

	return table, report, nil
}

// analyze computes one cluster's aggregated row.
func analyze(c *cluster.Cluster, ringOpts []rings.Option) result {
	if c == nil {
		return result{err: fmt.Errorf("pipeline: nil cluster: %w", cluster.ErrDataIntegrity)}
	}

	counts, err := rings.Count(c, ringOpts...)
	if err != nil {
		return result{row: stats.Row{ID: c.ID()}, err: err}
	}
	profile, err := motif.Profile(c)
	if err != nil {
		return result{row: stats.Row{ID: c.ID()}, err: err}
	}

	return result{row: stats.Row{
		ID:     c.ID(),
		N:      c.N(),
		Energy: c.Energy(),
		HBonds: c.BondCount(),
		Rings:  counts,
		Motifs: profile,
	}}
}

// validateRingOpts rejects an out-of-range ring bound before any work runs.
// A probe cluster keeps the bounds check inside package rings, where the
// contract lives.
func validateRingOpts(ringOpts []rings.Option) error {
	if len(ringOpts) == 0 {
		return nil
	}
	probe, err := cluster.New("", 0, 0, nil)
	if err != nil {
		return err
	}
	if _, err = rings.Count(probe, ringOpts...); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	return nil
}
