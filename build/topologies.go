// This file implements the topology constructors.
package build

import (
	"errors"
	"fmt"

	"github.com/watlab/hbnet/cluster"
)

// ErrTooFewMolecules indicates a size parameter below the minimum the
// requested topology can be built from.
// Usage: if errors.Is(err, ErrTooFewMolecules) { /* report invalid size */ }.
var ErrTooFewMolecules = errors.New("build: too few molecules")

// Chain returns the bonds of an open donor chain 0→1→…→n-1.
// Requires n ≥ 2. The family graph is a path and carries no rings.
func Chain(n int) ([]cluster.Bond, error) {
	if n < 2 {
		return nil, fmt.Errorf("build: Chain(%d): %w", n, ErrTooFewMolecules)
	}

	bonds := make([]cluster.Bond, 0, n-1)
	for i := 0; i < n-1; i++ {
		bonds = append(bonds, cluster.Bond{From: i, To: i + 1})
	}

	return bonds, nil
}

// Ring returns the bonds of a homodromic ring 0→1→…→n-1→0, the canonical
// cyclic water n-mer. Requires n ≥ 3. Every molecule is an "AD": it donates
// one bond and accepts one. The family graph carries exactly one primitive
// n-ring.
func Ring(n int) ([]cluster.Bond, error) {
	if n < 3 {
		return nil, fmt.Errorf("build: Ring(%d): %w", n, ErrTooFewMolecules)
	}

	bonds := make([]cluster.Bond, 0, n)
	for i := 0; i < n; i++ {
		bonds = append(bonds, cluster.Bond{From: i, To: (i + 1) % n})
	}

	return bonds, nil
}

// Book returns the bonds of the six-molecule "book": two quadrilaterals
// fused along the shared edge 2–3.
//
//	0 ─ 1        quad A: 0-1-2-3   quad B: 2-4-5-3
//	│   │
//	3 ─ 2 ─ 4    Both 4-rings are primitive; their shared-edge perimeter
//	│       │    (the 6-cycle 0-1-2-4-5-3) is composite and must not be
//	5 ──────┘    counted.
func Book() []cluster.Bond {
	return []cluster.Bond{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}, // quad A
		{From: 2, To: 4}, {From: 4, To: 5}, {From: 5, To: 3}, // quad B closes through the shared edge
	}
}

// Prism returns the bonds of the hexamer prism: two stacked homodromic
// triangles (0-1-2 on top, 3-4-5 below) joined by three vertical bonds
// donated downward. Nine bonds total; the family graph carries two primitive
// 3-rings (the triangles) and three primitive 4-rings (the side faces) —
// every 5- and 6-cycle of the prism is composite.
func Prism() []cluster.Bond {
	return []cluster.Bond{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, // top triangle
		{From: 3, To: 4}, {From: 4, To: 5}, {From: 5, To: 3}, // bottom triangle
		{From: 0, To: 3}, {From: 1, To: 4}, {From: 2, To: 5}, // verticals
	}
}
