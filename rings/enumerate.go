// This file enumerates all simple cycles of a bounded length in an
// undirected graph given as sorted adjacency lists. Each cycle is emitted
// exactly once, anchored at its smallest vertex.
package rings

import (
	"sort"
	"strconv"
	"strings"
)

// simpleCycles returns every simple cycle of length MinRingSize..maxLen as a
// vertex sequence [v0, v1, ..., vL-1] with v0 the smallest vertex of the
// cycle and v1 < vL-1 (direction canonicalized).
//
// The search is anchored: cycles are discovered from their smallest vertex s,
// and only vertices > s may appear later in the path, so no cycle is found
// from two different anchors. Bounding the path length keeps the search
// tractable on sparse near-planar graphs (typical node counts ≲ 30).
func simpleCycles(adj [][]int, maxLen int) [][]int {
	n := len(adj)
	var cycles [][]int

	path := make([]int, 0, maxLen)
	inPath := make([]bool, n)

	// dfs extends path (currently ending at v) with neighbors of v.
	var dfs func(start, v int)
	dfs = func(start, v int) {
		path = append(path, v)
		inPath[v] = true

		for _, w := range adj[v] {
			// 1) Closing edge back to the anchor: record one orientation only.
			if w == start && len(path) >= MinRingSize && path[1] < path[len(path)-1] {
				cycles = append(cycles, append([]int(nil), path...))
			}
			// 2) Extend with unvisited vertices above the anchor, within bound.
			if w > start && !inPath[w] && len(path) < maxLen {
				dfs(start, w)
			}
		}

		inPath[v] = false
		path = path[:len(path)-1]
	}

	for s := 0; s < n; s++ {
		dfs(s, s)
	}

	return cycles
}

// edgeKey encodes the undirected edge {u,v} as a single comparable int.
// Vertex indices are bounded well below 1<<16 for any realistic cluster.
func edgeKey(u, v int) int {
	if u > v {
		u, v = v, u
	}

	return u<<16 | v
}

// cycleEdges converts a vertex sequence into its sorted edge-key set,
// including the closing edge.
func cycleEdges(cycle []int) []int {
	keys := make([]int, len(cycle))
	for i, u := range cycle {
		v := cycle[(i+1)%len(cycle)]
		keys[i] = edgeKey(u, v)
	}
	sort.Ints(keys)

	return keys
}

// setKey canonicalizes a sorted edge-key set into a string usable as a
// hash-set member. Two cycles are the same ring iff their setKeys match.
func setKey(edges []int) string {
	var sb strings.Builder
	for i, e := range edges {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}
