package model

import (
	"runtime"
	"time"
)

// Config holds all tool configuration
type Config struct {
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Sweep       SweepConfig       `yaml:"sweep"`
	Output      OutputConfig      `yaml:"output"`
}

// CacheConfig controls the parsed-mechanism cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ConcurrencyConfig controls worker counts for sweep and batch runs
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// SweepConfig controls sensitivity-sweep output
type SweepConfig struct {
	Factor     float64 `yaml:"factor"`      // perturbation applied to one reaction per file
	FilePrefix string  `yaml:"file_prefix"` // output files are <prefix>_<reaction index>
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             15 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Sweep: SweepConfig{
			Factor:     10.0,
			FilePrefix: "chem.inp",
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
