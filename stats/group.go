// This file implements grouped reductions (mean / standard deviation by
// cluster size n).
package stats

import (
	"math"
	"sort"
)

// Groups is the result of partitioning a Table's rows by cluster size n.
// Grouping is stable: a cluster ID always maps to the same group, and rows
// keep their insertion order within each group.
type Groups struct {
	t   *Table
	ns  []int         // distinct n values, ascending
	byN map[int][]int // n → row positions in insertion order
}

// GroupByN partitions the table's rows by molecule count.
// Complexity: O(rows + groups·log groups).
func (t *Table) GroupByN() *Groups {
	g := &Groups{t: t, byN: make(map[int][]int)}
	for i, r := range t.rows {
		if _, seen := g.byN[r.N]; !seen {
			g.ns = append(g.ns, r.N)
		}
		g.byN[r.N] = append(g.byN[r.N], i)
	}
	sort.Ints(g.ns)

	return g
}

// Ns returns the distinct cluster sizes in ascending order.
func (g *Groups) Ns() []int {
	return append([]int(nil), g.ns...)
}

// Size returns the number of rows in the group for cluster size n.
func (g *Groups) Size(n int) int {
	return len(g.byN[n])
}

// Mean computes the arithmetic mean of the named column within each group.
// Returns ErrColumnNotFound for an unknown column.
// Complexity: O(rows).
func (g *Groups) Mean(col string) (map[int]float64, error) {
	at, err := g.t.columnFn(col)
	if err != nil {
		return nil, err
	}

	means := make(map[int]float64, len(g.ns))
	for _, n := range g.ns {
		sum := 0.0
		for _, i := range g.byN[n] {
			sum += at(g.t.rows[i])
		}
		means[n] = sum / float64(len(g.byN[n]))
	}

	return means, nil
}

// Std computes the sample standard deviation (n-1 denominator) of the named
// column within each group.
//
// Convention (documented contract): a single-member group has standard
// deviation 0, not NaN.
// Complexity: O(rows).
func (g *Groups) Std(col string) (map[int]float64, error) {
	at, err := g.t.columnFn(col)
	if err != nil {
		return nil, err
	}
	means, err := g.Mean(col)
	if err != nil {
		return nil, err
	}

	stds := make(map[int]float64, len(g.ns))
	for _, n := range g.ns {
		members := g.byN[n]
		if len(members) < 2 {
			stds[n] = 0 // singleton convention
			continue
		}

		sumsq := 0.0
		for _, i := range members {
			d := at(g.t.rows[i]) - means[n]
			sumsq += d * d
		}
		stds[n] = math.Sqrt(sumsq / float64(len(members)-1))
	}

	return stds, nil
}
