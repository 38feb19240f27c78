// This file derives the undirected "family" graph of a Cluster:
// the simple graph obtained by dropping bond direction and merging
// antiparallel pairs into a single edge.
package cluster

import "sort"

// Family returns the undirected family graph as adjacency lists:
// Family()[i] is the sorted list of molecules sharing at least one hydrogen
// bond with molecule i, in either direction.
//
// The derivation is computed once and cached; it is idempotent — calling
// Family any number of times yields identical adjacency. The returned slices
// are copies and may be mutated freely by the caller.
//
// Complexity: O(n + b·log b) on first call, O(n + m) per call thereafter
// (m = undirected edge count).
func (c *Cluster) Family() [][]int {
	c.famOnce.Do(c.deriveFamily)

	// Hand out copies so the cached adjacency stays immutable.
	out := make([][]int, len(c.family))
	for i, nbrs := range c.family {
		out[i] = append([]int(nil), nbrs...)
	}

	return out
}

// FamilyEdges returns the undirected edge set as Bond pairs normalized to
// From < To, sorted lexicographically. Antiparallel directed bonds collapse
// into one edge. Complexity: O(n + m) after the first Family derivation.
func (c *Cluster) FamilyEdges() []Bond {
	c.famOnce.Do(c.deriveFamily)

	var edges []Bond
	for u, nbrs := range c.family {
		for _, v := range nbrs {
			if u < v { // emit each undirected edge once
				edges = append(edges, Bond{From: u, To: v})
			}
		}
	}

	return edges
}

// deriveFamily builds the cached adjacency lists from the directed bonds.
func (c *Cluster) deriveFamily() {
	// 1) Collect neighbor sets, merging direction and antiparallel pairs.
	sets := make([]map[int]struct{}, c.n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	for _, b := range c.bonds {
		sets[b.From][b.To] = struct{}{}
		sets[b.To][b.From] = struct{}{}
	}

	// 2) Freeze each set into a sorted slice for deterministic traversal.
	c.family = make([][]int, c.n)
	for i, set := range sets {
		nbrs := make([]int, 0, len(set))
		for v := range set {
			nbrs = append(nbrs, v)
		}
		sort.Ints(nbrs)
		c.family[i] = nbrs
	}
}
