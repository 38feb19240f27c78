// This file declares Row, Table, and the package sentinel errors.
package stats

import (
	"errors"

	"github.com/watlab/hbnet/rings"
)

// Sentinel errors for table and statistics operations.
var (
	// ErrDuplicateID indicates an Append with a cluster ID already present.
	ErrDuplicateID = errors.New("stats: duplicate cluster id")

	// ErrColumnNotFound indicates a reference to an unknown column name.
	ErrColumnNotFound = errors.New("stats: column not found")

	// ErrNotEnoughRows indicates a statistic that needs at least two rows
	// was requested on a smaller table.
	ErrNotEnoughRows = errors.New("stats: not enough rows")

	// ErrDegenerateColumn indicates a zero-variance column in a pairwise
	// correlation, where Pearson is undefined.
	ErrDegenerateColumn = errors.New("stats: zero-variance column")

	// ErrInvalidCluster indicates a normalization over a degenerate row
	// (zero molecules or zero hydrogen bonds as the divisor).
	ErrInvalidCluster = errors.New("stats: degenerate cluster in normalization")
)

// Row is one cluster's aggregated analysis result.
type Row struct {
	// ID is the cluster's dataset-wide unique identifier (the table key).
	ID string

	// N is the molecule count.
	N int

	// Energy is the cluster's total energy.
	Energy float64

	// HBonds is the total directed hydrogen-bond count (Σ out-degrees).
	HBonds int

	// Rings holds the primitive ring counts by size.
	Rings rings.Counts

	// Motifs counts molecules by motif label ("AD", "AAD", ...).
	Motifs map[string]int
}

// Table is an insertion-ordered set of Rows keyed by cluster ID.
// The zero value is not usable; construct with NewTable.
type Table struct {
	rows  []Row
	index map[string]int // cluster ID → position in rows
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}
