// This file implements pairwise Pearson correlation over table columns and
// the ring-size correlation matrix.
package stats

import (
	"fmt"
	"math"

	"github.com/watlab/hbnet/rings"
)

// Pearson computes the sample Pearson correlation coefficient between two
// named columns across all rows.
//
// Identical columns yield 1.0; exactly anti-correlated columns yield -1.0.
// Errors: ErrColumnNotFound for unknown columns, ErrNotEnoughRows for fewer
// than two rows, ErrDegenerateColumn when either column has zero variance.
// Complexity: O(rows).
func (t *Table) Pearson(colX, colY string) (float64, error) {
	// 1) Resolve both columns before touching any data.
	xs, err := t.Column(colX)
	if err != nil {
		return 0, err
	}
	ys, err := t.Column(colY)
	if err != nil {
		return 0, err
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("stats: Pearson(%q,%q): %d rows: %w", colX, colY, len(xs), ErrNotEnoughRows)
	}

	// 2) Single deterministic pass: means first, then centered moments.
	r, degenerate := pearson(xs, ys)
	if degenerate {
		return 0, fmt.Errorf("stats: Pearson(%q,%q): %w", colX, colY, ErrDegenerateColumn)
	}

	return r, nil
}

// RingCorrelation computes the pairwise Pearson matrix over the ring-count
// columns ring3..ring10, in that order. Degenerate (zero-variance) columns
// are zeroed — including their diagonal entry — rather than erroring, so a
// dataset without, say, any 9-rings still yields a full matrix.
// Returns the matrix and the column names. Requires at least two rows.
func (t *Table) RingCorrelation() ([][]float64, []string, error) {
	if len(t.rows) < 2 {
		return nil, nil, fmt.Errorf("stats: RingCorrelation: %d rows: %w", len(t.rows), ErrNotEnoughRows)
	}

	// 1) Materialize the eight ring columns once.
	k := rings.MaxRingSize - rings.MinRingSize + 1
	names := make([]string, 0, k)
	cols := make([][]float64, 0, k)
	for size := rings.MinRingSize; size <= rings.MaxRingSize; size++ {
		name := ringColumn(size)
		vals, err := t.Column(name)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		cols = append(cols, vals)
	}

	// 2) Fill the symmetric matrix; degenerate pairs read 0.
	corr := make([][]float64, k)
	for i := range corr {
		corr[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			r, degenerate := pearson(cols[i], cols[j])
			if degenerate {
				r = 0
			}
			corr[i][j] = r
			corr[j][i] = r
		}
	}

	return corr, names, nil
}

// pearson computes the correlation of two equal-length vectors.
// degenerate reports a zero-variance input, where the coefficient is
// undefined; the caller picks the policy.
func pearson(xs, ys []float64) (r float64, degenerate bool) {
	n := float64(len(xs))
	meanX, meanY := 0.0, 0.0
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	cov, varX, varY := 0.0, 0.0, 0.0
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, true
	}

	return cov / math.Sqrt(varX*varY), false
}
