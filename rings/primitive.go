// This file applies the primitivity rule to enumerated cycles and exposes
// the public Count entry point.
package rings

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/watlab/hbnet/cluster"
)

// Count returns the per-size primitive ring counts of the cluster's
// undirected family graph, as an ordered (size, count) sequence covering
// every size in [MinRingSize, maxSize] with explicit zeros.
//
// A ring is primitive when its edge set is NOT the symmetric difference of
// two smaller primitive rings sharing exactly one edge. Primitivity is
// order-dependent: cycles are processed by increasing length so that the
// primitivity of shorter rings is settled before longer candidates are
// tested.
//
// Errors: ErrNilCluster for a nil cluster, ErrRingSizeOutOfRange for an
// option bound outside [MinRingSize, MaxRingSize].
func Count(c *cluster.Cluster, opts ...Option) (Counts, error) {
	// 1) Resolve and validate options.
	if c == nil {
		return nil, fmt.Errorf("rings: Count: %w", ErrNilCluster)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSize < MinRingSize || o.maxSize > MaxRingSize {
		return nil, fmt.Errorf("rings: Count: max size %d: %w", o.maxSize, ErrRingSizeOutOfRange)
	}

	// 2) Enumerate all bounded simple cycles of the family graph.
	cycles := simpleCycles(c.Family(), o.maxSize)

	// 3) Keep only primitive cycles and tally them by size.
	counts := make(Counts, 0, o.maxSize-MinRingSize+1)
	for size := MinRingSize; size <= o.maxSize; size++ {
		counts = append(counts, SizeCount{Size: size})
	}
	for _, cyc := range primitiveOf(cycles, o.maxSize) {
		counts[len(cyc)-MinRingSize].Count++
	}

	return counts, nil
}

// ring is one accepted primitive cycle, held as its sorted edge keys.
type ring struct {
	edges []int
}

// primitiveOf filters the enumerated cycles down to primitive ones.
//
// Processing order: ascending length, then canonical edge-set key, so the
// result is deterministic and every composite is tested only after both of
// its constituents were accepted. Each time a cycle is accepted, the edge-XOR
// of it with every previously accepted ring that shares exactly one edge is
// registered as a composite key; a later candidate matching a registered key
// is excluded. XOR lengths always exceed both constituents, so increasing
// length order suffices.
func primitiveOf(cycles [][]int, maxSize int) [][]int {
	// 1) Deterministic processing order.
	sort.Slice(cycles, func(i, j int) bool {
		if len(cycles[i]) != len(cycles[j]) {
			return len(cycles[i]) < len(cycles[j])
		}
		return setKey(cycleEdges(cycles[i])) < setKey(cycleEdges(cycles[j]))
	})

	composites := hashset.New() // canonical keys of known composite edge sets
	var accepted []ring
	var primitive [][]int

	for _, cyc := range cycles {
		edges := cycleEdges(cyc)
		key := setKey(edges)

		// 2) Composite? Then it decomposes into two smaller rings — skip it.
		if composites.Contains(key) {
			continue
		}

		// 3) Accept, then register the composites this ring can form with
		//    every earlier primitive sharing exactly one edge.
		for _, prev := range accepted {
			if xorLen := len(prev.edges) + len(edges) - 2; xorLen > maxSize {
				continue // the fused perimeter is beyond the search horizon
			}
			if xor, shared := edgeXOR(prev.edges, edges); shared == 1 {
				composites.Add(setKey(xor))
			}
		}
		accepted = append(accepted, ring{edges: edges})
		primitive = append(primitive, cyc)
	}

	return primitive
}

// edgeXOR merges two sorted edge-key sets, returning their symmetric
// difference (sorted) and the number of shared edges.
func edgeXOR(a, b []int) (xor []int, shared int) {
	xor = make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			xor = append(xor, a[i])
			i++
		case a[i] > b[j]:
			xor = append(xor, b[j])
			j++
		default:
			shared++
			i++
			j++
		}
	}
	xor = append(xor, a[i:]...)
	xor = append(xor, b[j:]...)

	return xor, shared
}
