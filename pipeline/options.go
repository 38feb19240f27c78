// This file declares Run's functional options.
package pipeline

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/watlab/hbnet/catalog"
	"github.com/watlab/hbnet/rings"
)

// Option configures optional behavior of Run.
type Option func(*config)

// config holds the resolved configuration for one Run call.
type config struct {
	workers  int
	ringOpts []rings.Option
	logger   *zap.Logger
	cat      *catalog.Catalog
}

// defaultConfig returns the canonical configuration: one worker per CPU,
// full ring range, silent logger, no catalog.
func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
}

// WithWorkers bounds the worker pool to n concurrent analyses.
// Values < 1 fall back to the default.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithMaxRingSize restricts ring enumeration to rings of length ≤ k.
// Validation happens inside rings.Count and surfaces as a run error.
func WithMaxRingSize(k int) Option {
	return func(c *config) { c.ringOpts = append(c.ringOpts, rings.WithMaxSize(k)) }
}

// WithLogger installs a zap logger for progress and exclusion reporting.
// A nil logger keeps the default Nop.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCatalog persists every computed row into cat as it is produced.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) { c.cat = cat }
}
