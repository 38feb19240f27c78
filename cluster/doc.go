// Package cluster defines the central Cluster, Molecule, and Bond types:
// immutable records of one water cluster's hydrogen-bond connectivity.
//
// A Cluster holds n molecules (indexed 0..n-1), a total energy, and a set of
// directed Bonds, each oriented hydrogen→oxygen (donor→acceptor). Bond
// detection itself happens upstream — a collaborator supplies the bond list,
// this package only validates and freezes it.
//
// From the directed bonds two views are derived and cached for the lifetime
// of the Cluster:
//
//   - per-molecule in/out degrees (accepted vs. donated bonds), exposed via
//     Molecules and Degrees;
//   - the undirected "family" graph — direction dropped, antiparallel pairs
//     merged — exposed via Family and FamilyEdges. Derivation is idempotent:
//     recomputing it never changes the edge set.
//
// Errors:
//
//	ErrDataIntegrity  - malformed record (bond endpoint out of range,
//	                    duplicate or self bond, non-finite energy, n < 0).
//	ErrInvalidCluster - degenerate cluster (no molecules) used where
//	                    molecules are required.
package cluster
