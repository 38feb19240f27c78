// Package pipeline runs the full per-cluster analysis — ring counting,
// motif classification, aggregation — across a dataset.
//
// Clusters are independent, so the run fans out over a bounded worker pool;
// each worker writes its result into a distinct preallocated slot, leaving
// no shared mutable state to contend on. The final table is assembled in
// input order, so output is deterministic regardless of worker scheduling.
//
// Error policy (skip-and-report): a malformed cluster is excluded from the
// table, counted, and listed in the Report that accompanies the result —
// the run itself keeps going. Only context cancellation aborts the whole
// run. Progress and exclusions are logged through an injected zap logger
// (Nop by default, so library users stay in control of output).
package pipeline
