// Package rings types and options for primitive-ring counting.
package rings

import "errors"

const (
	// MinRingSize is the smallest ring a simple graph can carry.
	MinRingSize = 3

	// MaxRingSize is the hard upper bound on enumerated ring length.
	// Unbounded search over cyclic graphs blows up combinatorially, so the
	// search horizon never exceeds this cap regardless of options.
	MaxRingSize = 10
)

var (
	// ErrNilCluster is returned when a nil *cluster.Cluster is passed to Count.
	ErrNilCluster = errors.New("rings: cluster is nil")

	// ErrRingSizeOutOfRange indicates WithMaxSize was given a bound outside
	// [MinRingSize, MaxRingSize].
	ErrRingSizeOutOfRange = errors.New("rings: ring size out of range")
)

// Option configures optional behavior of Count.
type Option func(*options)

// options holds the resolved configuration for one Count call.
type options struct {
	maxSize int // enumerate cycles of length MinRingSize..maxSize
}

// defaultOptions returns the canonical configuration: full 3..10 range.
func defaultOptions() options {
	return options{maxSize: MaxRingSize}
}

// WithMaxSize restricts enumeration to rings of length ≤ k.
// k must lie in [MinRingSize, MaxRingSize]; Count rejects violations with
// ErrRingSizeOutOfRange.
func WithMaxSize(k int) Option {
	return func(o *options) { o.maxSize = k }
}

// SizeCount is one (ring size, primitive ring count) pair.
type SizeCount struct {
	// Size is the ring length (number of molecules = number of edges).
	Size int

	// Count is the number of primitive rings of that size. Never negative.
	Count int
}

// Counts is the ordered sequence of per-size primitive ring counts,
// ascending by Size, with explicit zero entries so the column set is stable
// across clusters.
type Counts []SizeCount

// Of returns the count for the given ring size, or 0 when the size lies
// outside the enumerated range.
func (cs Counts) Of(size int) int {
	for _, sc := range cs {
		if sc.Size == size {
			return sc.Count
		}
	}

	return 0
}

// Total returns the number of primitive rings across all sizes.
func (cs Counts) Total() int {
	sum := 0
	for _, sc := range cs {
		sum += sc.Count
	}

	return sum
}
