// Package hbnet analyzes the hydrogen-bond networks of water clusters —
// from raw bond lists to primitive-ring statistics and correlation tables.
//
// What is hbnet?
//
//	A small, deterministic analysis toolkit that brings together:
//		• cluster/  — immutable water-cluster records: molecules, directed
//		              hydrogen bonds, and the derived undirected family graph
//		• rings/    — primitive-cycle enumeration (ring sizes 3..10) with
//		              composite-ring exclusion
//		• motif/    — donor/acceptor node classification (AD, AAD, AADD, ...)
//		• stats/    — the aggregated result table: grouped mean/std and
//		              pairwise Pearson correlation over named columns
//		• dataset/  — a line-oriented text format for cluster records
//		• catalog/  — an optional badger-backed cache of computed rows
//		• pipeline/ — parallel per-cluster analysis with a skip-and-report
//		              policy for malformed records
//		• build/    — synthetic topologies (chain, ring, book, prism) for
//		              tests and demos
//
// Why hbnet?
//
//   - Deterministic – fixed traversal orders, canonical cycle keys, stable
//     grouping; the same dataset always yields the same table
//   - Honest about bad data – a malformed cluster is excluded and reported,
//     never silently repaired, and never aborts the whole run
//   - Bounded – cycle search is capped at ring size 10, so even dense
//     clusters stay tractable
//
// Quick ASCII example — the water trimer, a directed triangle of bonds:
//
//	    1 ──▶ 2
//	    ▲     │
//	    └─ 3 ◀┘
//
//	every molecule accepts once and donates once (motif "AD"), and the
//	family graph carries exactly one primitive 3-ring.
//
// The cmd/hbnet command loads a dataset file, runs the pipeline, and prints
// the aggregated table together with a summary of excluded clusters.
//
//	go get github.com/watlab/hbnet
package hbnet
