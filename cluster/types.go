// This file declares Bond, Molecule, Cluster, sentinel errors,
// and the New constructor.
package cluster

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for cluster construction and access.
var (
	// ErrDataIntegrity indicates a malformed or incomplete cluster record:
	// a bond endpoint outside [0,n), a duplicate directed bond, a self bond,
	// a negative molecule count, or a non-finite energy.
	ErrDataIntegrity = errors.New("cluster: data integrity violation")

	// ErrInvalidCluster indicates a degenerate cluster (zero molecules)
	// used in an operation that requires at least one molecule.
	ErrInvalidCluster = errors.New("cluster: degenerate cluster")
)

// Bond is one directed hydrogen bond, oriented hydrogen→oxygen:
// molecule From donates a hydrogen to molecule To.
// Indices are 0-based positions within the owning Cluster.
type Bond struct {
	// From is the donating molecule index.
	From int

	// To is the accepting molecule index.
	To int
}

// Molecule is a read-only view of one water molecule within a Cluster.
//
// In counts accepted bonds (directed in-degree), Out counts donated bonds
// (directed out-degree). The donor/acceptor type label is a pure function of
// (In, Out) and lives in package motif; it is never stored here.
type Molecule struct {
	// Index is the molecule's position within its Cluster (0-based).
	Index int

	// In is the number of hydrogen bonds this molecule accepts.
	In int

	// Out is the number of hydrogen bonds this molecule donates.
	Out int
}

// Cluster is one immutable water-cluster structure instance.
//
// All fields are fixed at construction by New; derived views (degrees are
// computed eagerly, the undirected family graph lazily) are cached for the
// lifetime of the Cluster. A Cluster is safe for concurrent use.
type Cluster struct {
	id     string
	n      int
	energy float64
	bonds  []Bond

	in  []int // in[i] = accepted bonds of molecule i
	out []int // out[i] = donated bonds of molecule i

	famOnce sync.Once
	family  [][]int // sorted adjacency lists of the undirected family graph
}

// New constructs an immutable Cluster from a validated record.
//
// id is the dataset-wide unique cluster identifier, n the molecule count,
// energy the total energy (any consistent unit), bonds the directed
// hydrogen-bond list. The bond slice is copied; the caller keeps ownership
// of its argument.
//
// Returns ErrDataIntegrity (wrapped with context) when:
//   - n < 0,
//   - energy is NaN or ±Inf,
//   - a bond endpoint lies outside [0,n),
//   - a bond connects a molecule to itself,
//   - the same directed bond appears twice.
//
// Complexity: O(n + b) time and space, b = len(bonds).
func New(id string, n int, energy float64, bonds []Bond) (*Cluster, error) {
	// 1) Scalar validation: molecule count and energy must be sane.
	if n < 0 {
		return nil, fmt.Errorf("cluster: New(%q): molecule count %d: %w", id, n, ErrDataIntegrity)
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return nil, fmt.Errorf("cluster: New(%q): non-finite energy: %w", id, ErrDataIntegrity)
	}

	c := &Cluster{
		id:     id,
		n:      n,
		energy: energy,
		bonds:  make([]Bond, 0, len(bonds)),
		in:     make([]int, n),
		out:    make([]int, n),
	}

	// 2) Bond validation: endpoints in range, no self bonds, no duplicates.
	seen := make(map[Bond]struct{}, len(bonds))
	for _, b := range bonds {
		if b.From < 0 || b.From >= n || b.To < 0 || b.To >= n {
			return nil, fmt.Errorf("cluster: New(%q): bond %d>%d references a non-existent molecule: %w",
				id, b.From, b.To, ErrDataIntegrity)
		}
		if b.From == b.To {
			return nil, fmt.Errorf("cluster: New(%q): self bond at molecule %d: %w", id, b.From, ErrDataIntegrity)
		}
		if _, dup := seen[b]; dup {
			return nil, fmt.Errorf("cluster: New(%q): duplicate bond %d>%d: %w", id, b.From, b.To, ErrDataIntegrity)
		}
		seen[b] = struct{}{}

		// 3) Accumulate degrees as we accept each bond.
		c.bonds = append(c.bonds, b)
		c.out[b.From]++
		c.in[b.To]++
	}

	return c, nil
}
