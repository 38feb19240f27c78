// Package stats aggregates per-cluster analysis results into a tabular
// dataset and computes grouped statistics over it.
//
// A Row joins one cluster's molecule count, total energy, hydrogen-bond
// total, primitive ring counts, and motif counts. A Table is an
// insertion-ordered collection of Rows addressable by cluster ID, exposing
// named numeric columns:
//
//	"n", "energy", "hbonds",
//	"ring3" .. "ring10",
//	"motif:<label>" for every motif label present in the dataset.
//
// Supported reductions:
//
//   - GroupByN: mean and standard deviation of any column grouped by cluster
//     size n. Grouping is stable (a cluster ID always lands in the same
//     group). Convention, fixed and tested: the sample standard deviation of
//     a single-member group is reported as 0.
//   - Pearson: pairwise Pearson correlation between two columns; the ring
//     correlation matrix zeroes degenerate (zero-variance) columns, matching
//     the correlation policy used elsewhere in this repository's lineage.
//   - NormalizePerMolecule / NormalizePerBond: per-row division by n or by
//     the hydrogen-bond total; a zero divisor is rejected with
//     ErrInvalidCluster rather than producing Inf or NaN.
package stats
