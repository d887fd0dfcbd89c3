package config

import (
	"os"
	"strconv"
)

const (
	EnvGeneratorSeed       = "DRAFTFORGE_GENERATOR_SEED"
	EnvGeneratorDatasetDir = "DRAFTFORGE_GENERATOR_DATASET_DIR"
)

// GeneratorConfig holds document generation parameters. A non-zero Seed
// makes synthesized header details reproducible across runs. DatasetDir
// points at an optional reference corpus; empty disables the load.
type GeneratorConfig struct {
	Seed       int64  `toml:"seed"`
	DatasetDir string `toml:"dataset_dir"`
}

// Finalize applies environment variable overrides.
func (c *GeneratorConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *GeneratorConfig) Merge(overlay *GeneratorConfig) {
	if overlay.Seed != 0 {
		c.Seed = overlay.Seed
	}
	if overlay.DatasetDir != "" {
		c.DatasetDir = overlay.DatasetDir
	}
}

func (c *GeneratorConfig) loadEnv() {
	if v := os.Getenv(EnvGeneratorSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv(EnvGeneratorDatasetDir); v != "" {
		c.DatasetDir = v
	}
}
