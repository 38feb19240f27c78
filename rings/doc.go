// Package rings counts primitive rings (non-composite simple cycles) in the
// undirected family graph of a water cluster, for ring sizes 3 through 10.
//
// Enumeration is an anchored depth-first search bounded by the maximum ring
// size, so it stays tractable on the small, sparse graphs real clusters
// produce. Cycles that differ only by starting point or traversal direction
// are the same ring: each cycle is anchored at its smallest molecule index
// and oriented toward the smaller of its two anchor neighbors, so every ring
// is emitted exactly once.
//
// Primitivity follows the edge-XOR rule: rings are processed in increasing
// length, and a candidate is composite — and excluded — exactly when its
// edge set equals the symmetric difference of two already-accepted primitive
// rings sharing exactly one edge. The canonical example is a pair of fused
// quadrilaterals: both 4-rings count, their shared-edge perimeter does not.
// Membership testing uses canonicalized edge-set keys in a hash set.
//
// Complexity:
//
//   - Time:   O(V · d^(k-1) + P²·k)  (d = max degree, k = max ring size,
//     P = primitive rings found)
//   - Memory: O(V + C·k)             (C = simple cycles up to length k)
package rings
