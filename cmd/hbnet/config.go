// This file loads the optional YAML run configuration.
package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// runConfig mirrors the optional -config YAML file. Zero values mean
// "use the pipeline default".
type runConfig struct {
	// Workers bounds the analysis worker pool.
	Workers int `yaml:"workers"`

	// MaxRingSize restricts ring enumeration (3..10).
	MaxRingSize int `yaml:"max_ring_size"`

	// CatalogPath, when set, persists computed rows into a badger catalog.
	CatalogPath string `yaml:"catalog_path"`
}

// loadConfig reads and decodes the YAML file at path.
func loadConfig(path string) (runConfig, error) {
	var cfg runConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: decode %q", path)
	}

	return cfg, nil
}
