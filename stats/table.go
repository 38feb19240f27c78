// This file implements Table mutation and column access.
package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/watlab/hbnet/rings"
)

// motifPrefix namespaces motif-count columns ("motif:AD", "motif:AADD", ...).
const motifPrefix = "motif:"

// Append adds one row to the table. Returns ErrDuplicateID when a row with
// the same cluster ID exists; the table keys on IDs so that grouping stays
// stable. Complexity: O(1) amortized.
func (t *Table) Append(r Row) error {
	if _, dup := t.index[r.ID]; dup {
		return fmt.Errorf("stats: Append(%q): %w", r.ID, ErrDuplicateID)
	}
	t.index[r.ID] = len(t.rows)
	t.rows = append(t.rows, r)

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the row for the given cluster ID and whether it exists.
func (t *Table) Row(id string) (Row, bool) {
	i, ok := t.index[id]
	if !ok {
		return Row{}, false
	}

	return t.rows[i], true
}

// Rows returns a copy of all rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)

	return out
}

// Columns lists every addressable numeric column: the fixed scalar columns,
// the eight ring-size columns, then the sorted union of motif labels seen in
// any row. Complexity: O(rows·labels + labels·log labels).
func (t *Table) Columns() []string {
	cols := []string{"n", "energy", "hbonds"}
	for size := rings.MinRingSize; size <= rings.MaxRingSize; size++ {
		cols = append(cols, ringColumn(size))
	}

	labels := make(map[string]struct{})
	for _, r := range t.rows {
		for label := range r.Motifs {
			labels[label] = struct{}{}
		}
	}
	motifs := make([]string, 0, len(labels))
	for label := range labels {
		motifs = append(motifs, motifPrefix+label)
	}
	sort.Strings(motifs)

	return append(cols, motifs...)
}

// Column extracts the named column as a float64 vector in row order.
// Motif columns exist when their label occurs in at least one row; rows
// missing the label contribute 0. Returns ErrColumnNotFound for anything
// else. Complexity: O(rows).
func (t *Table) Column(name string) ([]float64, error) {
	at, err := t.columnFn(name)
	if err != nil {
		return nil, err
	}

	vals := make([]float64, len(t.rows))
	for i, r := range t.rows {
		vals[i] = at(r)
	}

	return vals, nil
}

// columnFn resolves a column name into a per-row accessor.
func (t *Table) columnFn(name string) (func(Row) float64, error) {
	switch name {
	case "n":
		return func(r Row) float64 { return float64(r.N) }, nil
	case "energy":
		return func(r Row) float64 { return r.Energy }, nil
	case "hbonds":
		return func(r Row) float64 { return float64(r.HBonds) }, nil
	}

	// ringK columns, K in [MinRingSize, MaxRingSize].
	if rest, ok := strings.CutPrefix(name, "ring"); ok {
		size, err := strconv.Atoi(rest)
		if err == nil && size >= rings.MinRingSize && size <= rings.MaxRingSize {
			return func(r Row) float64 { return float64(r.Rings.Of(size)) }, nil
		}
	}

	// motif:<label> columns exist once the label occurs somewhere.
	if label, ok := strings.CutPrefix(name, motifPrefix); ok {
		for _, r := range t.rows {
			if _, seen := r.Motifs[label]; seen {
				return func(r Row) float64 { return float64(r.Motifs[label]) }, nil
			}
		}
	}

	return nil, fmt.Errorf("stats: column %q: %w", name, ErrColumnNotFound)
}

// ringColumn names the column carrying primitive ring counts of one size.
func ringColumn(size int) string {
	return "ring" + strconv.Itoa(size)
}
