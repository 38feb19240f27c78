package motif

import (
	"errors"
	"fmt"
	"strings"

	"github.com/watlab/hbnet/cluster"
)

var (
	// ErrNegativeDegree indicates a malformed (negative) in- or out-degree.
	ErrNegativeDegree = errors.New("motif: negative degree")

	// ErrNilCluster is returned when a nil *cluster.Cluster is passed to Profile.
	ErrNilCluster = errors.New("motif: cluster is nil")
)

// Label maps an (in-degree, out-degree) pair to its canonical motif label:
// in "A" characters followed by out "D" characters. (0,0) yields "".
// Returns ErrNegativeDegree when either degree is negative.
// Complexity: O(in+out).
func Label(in, out int) (string, error) {
	if in < 0 || out < 0 {
		return "", fmt.Errorf("motif: Label(%d,%d): %w", in, out, ErrNegativeDegree)
	}

	return strings.Repeat("A", in) + strings.Repeat("D", out), nil
}

// Profile counts the motif labels over every molecule of the cluster.
// The returned map holds only labels that occur at least once.
// Complexity: O(n + Σ degree).
func Profile(c *cluster.Cluster) (map[string]int, error) {
	if c == nil {
		return nil, fmt.Errorf("motif: Profile: %w", ErrNilCluster)
	}

	profile := make(map[string]int)
	for _, m := range c.Molecules() {
		label, err := Label(m.In, m.Out)
		if err != nil {
			return nil, fmt.Errorf("motif: Profile(%q) molecule %d: %w", c.ID(), m.Index, err)
		}
		profile[label]++
	}

	return profile, nil
}
