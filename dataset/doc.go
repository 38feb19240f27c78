// Package dataset parses the line-oriented text format in which external
// collaborators ship pre-analyzed water-cluster records: molecule count,
// total energy, and the detected directed hydrogen-bond list.
//
// One record per cluster:
//
//	cluster "W3-ring" n=3 energy=-15.9 { 1>2 2>3 3>1 }
//
// Molecule indices are 1-based in the format and converted to the 0-based
// indices package cluster uses. Bond detection (distance/angle thresholds
// over raw coordinates) happens upstream; this package only reads its
// output. Go-style comments (// and /* */) are skipped, so datasets can be
// annotated in place.
//
// Loading is all-or-nothing: a syntactically bad record fails the whole
// Load, while semantically bad records (dangling indices, duplicate bonds)
// surface as cluster.ErrDataIntegrity wrapped with the record's ID and are
// left to the pipeline's skip-and-report policy.
package dataset
