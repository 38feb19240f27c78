// This file implements read-only accessors over an immutable Cluster.
package cluster

import "fmt"

// ID returns the dataset-wide unique identifier of this cluster.
func (c *Cluster) ID() string { return c.id }

// N returns the molecule count. By construction it equals the node count of
// the cluster's graph.
func (c *Cluster) N() int { return c.n }

// Energy returns the cluster's total energy. Always finite.
func (c *Cluster) Energy() float64 { return c.energy }

// BondCount returns the number of directed hydrogen bonds. It equals both
// the sum of in-degrees and the sum of out-degrees across all molecules.
func (c *Cluster) BondCount() int { return len(c.bonds) }

// Bonds returns a copy of the directed hydrogen-bond list in input order.
// Complexity: O(b).
func (c *Cluster) Bonds() []Bond {
	out := make([]Bond, len(c.bonds))
	copy(out, c.bonds)

	return out
}

// Degrees returns the (in, out) degree pair of molecule i.
// Returns ErrInvalidCluster when i is out of range.
func (c *Cluster) Degrees(i int) (in, out int, err error) {
	if i < 0 || i >= c.n {
		return 0, 0, fmt.Errorf("cluster: Degrees(%d): index out of range [0,%d): %w", i, c.n, ErrInvalidCluster)
	}

	return c.in[i], c.out[i], nil
}

// Molecules returns a read-only view of every molecule with its degree pair,
// ordered by index. Complexity: O(n).
func (c *Cluster) Molecules() []Molecule {
	ms := make([]Molecule, c.n)
	for i := 0; i < c.n; i++ {
		ms[i] = Molecule{Index: i, In: c.in[i], Out: c.out[i]}
	}

	return ms
}
