// Command hbnet loads a water-cluster dataset, runs the analysis pipeline,
// and prints the aggregated table with a summary of excluded clusters.
//
// Usage:
//
//	hbnet -data clusters.txt [-config run.yaml] [-group-by-n] [-corr]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/watlab/hbnet/catalog"
	"github.com/watlab/hbnet/dataset"
	"github.com/watlab/hbnet/pipeline"
	"github.com/watlab/hbnet/stats"
)

func main() {
	dataPath := flag.String("data", "", "cluster dataset file (required)")
	configPath := flag.String("config", "", "optional YAML run configuration")
	groupByN := flag.Bool("group-by-n", false, "print per-size mean/std of energy and hbonds")
	corr := flag.Bool("corr", false, "print the ring-size Pearson correlation matrix")
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hbnet:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	if err := run(*dataPath, *configPath, *groupByN, *corr, logger); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// run wires dataset → pipeline → stdout.
func run(dataPath, configPath string, groupByN, corr bool, logger *zap.Logger) error {
	clusters, err := dataset.LoadFile(dataPath)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithLogger(logger)}
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if cfg.Workers > 0 {
			opts = append(opts, pipeline.WithWorkers(cfg.Workers))
		}
		if cfg.MaxRingSize > 0 {
			opts = append(opts, pipeline.WithMaxRingSize(cfg.MaxRingSize))
		}
		if cfg.CatalogPath != "" {
			cat, err := catalog.Open(catalog.Opts{Path: cfg.CatalogPath})
			if err != nil {
				return err
			}
			defer cat.Close()
			opts = append(opts, pipeline.WithCatalog(cat))
		}
	}

	table, report, err := pipeline.Run(context.Background(), clusters, opts...)
	if err != nil {
		return err
	}

	printTable(table)
	printReport(report)
	if groupByN {
		if err := printGroups(table); err != nil {
			return err
		}
	}
	if corr {
		if err := printCorrelation(table); err != nil {
			return err
		}
	}

	return nil
}

// printTable writes the aggregated table, one cluster per line.
func printTable(table *stats.Table) {
	cols := table.Columns()

	// Materialize each column once; Columns only lists resolvable names.
	data := make([][]float64, 0, len(cols))
	for _, col := range cols {
		vals, err := table.Column(col)
		if err != nil {
			return
		}
		data = append(data, vals)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "id")
	for _, col := range cols {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for i, r := range table.Rows() {
		fmt.Fprint(w, r.ID)
		for _, vals := range data {
			fmt.Fprintf(w, "\t%g", vals[i])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

// printReport summarizes exclusions after the table.
func printReport(report pipeline.Report) {
	fmt.Printf("\nprocessed %d cluster(s), skipped %d\n", report.Processed, report.Skipped)
	for _, ex := range report.Exclusions {
		id := ex.ID
		if id == "" {
			id = "<unnamed>"
		}
		fmt.Printf("  excluded %s: %v\n", id, ex.Err)
	}
}

// printGroups prints per-size means and standard deviations.
func printGroups(table *stats.Table) error {
	g := table.GroupByN()

	meanE, err := g.Mean("energy")
	if err != nil {
		return err
	}
	stdE, err := g.Std("energy")
	if err != nil {
		return err
	}
	meanH, err := g.Mean("hbonds")
	if err != nil {
		return err
	}
	stdH, err := g.Std("hbonds")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nn\tcount\tmean(energy)\tstd(energy)\tmean(hbonds)\tstd(hbonds)")

	for _, n := range g.Ns() {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n", n, g.Size(n), meanE[n], stdE[n], meanH[n], stdH[n])
	}

	return w.Flush()
}

// printCorrelation prints the ring-size Pearson matrix.
func printCorrelation(table *stats.Table) error {
	corr, names, err := table.RingCorrelation()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "\n")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)
	for i, name := range names {
		fmt.Fprint(w, name)
		for j := range names {
			fmt.Fprintf(w, "\t%+.3f", corr[i][j])
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
