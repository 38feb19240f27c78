// This file implements per-row normalization of table columns.
package stats

import "fmt"

// NormalizePerMolecule divides the named column by each row's molecule
// count, returning the normalized vector in row order (e.g., energy per
// molecule). A row with n = 0 is rejected with ErrInvalidCluster — division
// never produces Inf or NaN. Complexity: O(rows).
func (t *Table) NormalizePerMolecule(col string) ([]float64, error) {
	return t.normalize(col, "NormalizePerMolecule", func(r Row) int { return r.N })
}

// NormalizePerBond divides the named column by each row's hydrogen-bond
// total. A row with zero bonds is rejected with ErrInvalidCluster.
// Complexity: O(rows).
func (t *Table) NormalizePerBond(col string) ([]float64, error) {
	return t.normalize(col, "NormalizePerBond", func(r Row) int { return r.HBonds })
}

// normalize extracts the column and divides each entry by the row divisor.
func (t *Table) normalize(col, op string, divisor func(Row) int) ([]float64, error) {
	vals, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(vals))
	for i, r := range t.rows {
		d := divisor(r)
		if d == 0 {
			return nil, fmt.Errorf("stats: %s(%q) row %q: zero divisor: %w", op, col, r.ID, ErrInvalidCluster)
		}
		out[i] = vals[i] / float64(d)
	}

	return out, nil
}
