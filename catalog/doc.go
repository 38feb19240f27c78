// Package catalog persists computed analysis rows in a badger database so
// repeated runs over a large dataset can skip clusters that were already
// analyzed.
//
// The catalog is an implementation convenience, not part of the analysis
// contract: the pipeline produces identical tables with or without one.
// Rows are stored as JSON values under "row:"-prefixed keys, one per
// cluster ID. An empty path opens an in-memory catalog, which is what the
// tests use.
package catalog
