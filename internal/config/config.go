// Package config defines the sweep configuration and its YAML loading
// logic.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// knownPatterns mirrors the rw modes fio accepts for this tool.
var knownPatterns = map[string]bool{
	"read":      true,
	"write":     true,
	"randread":  true,
	"randwrite": true,
	"randrw":    true,
}

// Config represents the full configuration for a parameter sweep.
type Config struct {
	Device     string        `yaml:"device"`      // device or file to benchmark, e.g. /dev/nvme0n1
	Size       string        `yaml:"size"`        // per-run test file size
	Runtime    int           `yaml:"runtime"`     // per-run duration in seconds
	Direct     bool          `yaml:"direct"`      // use O_DIRECT
	FioBinary  string        `yaml:"fio_binary"`  // fio executable name or path
	OutputDir  string        `yaml:"output_dir"`  // directory for CSV and raw fio JSON
	OutputFile string        `yaml:"output_file"` // CSV file name within OutputDir
	Cooldown   time.Duration `yaml:"cooldown"`    // pause between consecutive runs

	// Sweep dimensions. The sweep covers the full Cartesian product.
	Patterns   []string `yaml:"patterns"`
	BlockSizes []string `yaml:"block_sizes"`
	IODepths   []int    `yaml:"io_depths"`
	NumJobs    []int    `yaml:"num_jobs"`
	IOEngines  []string `yaml:"io_engines"`
}

// DefaultConfig returns the full sweep grid with its default pacing.
func DefaultConfig() *Config {
	return &Config{
		Size:       "1G",
		Runtime:    30,
		Direct:     true,
		FioBinary:  "fio",
		OutputDir:  "result",
		OutputFile: "iops_test_results.csv",
		Cooldown:   5 * time.Second,
		Patterns:   []string{"randrw"},
		BlockSizes: []string{"4k"},
		IODepths:   []int{16, 32, 64},
		NumJobs:    []int{4, 8, 16},
		IOEngines:  []string{"libaio", "io_uring", "sync", "psync"},
	}
}

// ApplyQuickGrid replaces the sweep dimensions with a smaller grid for
// fast exploratory runs, and shortens the per-run duration.
func (c *Config) ApplyQuickGrid() {
	c.Patterns = []string{"randread", "randwrite"}
	c.BlockSizes = []string{"4k", "64k"}
	c.IODepths = []int{1, 16, 64}
	c.NumJobs = []int{1, 4}
	c.IOEngines = []string{"libaio", "io_uring"}
	if c.Runtime > 15 {
		c.Runtime = 15
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file is found, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"fio_test.yaml", "sweep.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations that would make the sweep meaningless
// before any run executes. An empty dimension is an error, not a silent
// zero-length sweep.
func (c *Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("device is required")
	}
	if c.Size == "" {
		return fmt.Errorf("size is required")
	}
	if c.Runtime <= 0 {
		return fmt.Errorf("runtime must be positive, got %d", c.Runtime)
	}
	if c.Cooldown < 0 {
		return fmt.Errorf("cooldown must not be negative, got %s", c.Cooldown)
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("patterns: at least one rw mode is required")
	}
	if len(c.BlockSizes) == 0 {
		return fmt.Errorf("block_sizes: at least one block size is required")
	}
	if len(c.IODepths) == 0 {
		return fmt.Errorf("io_depths: at least one queue depth is required")
	}
	if len(c.NumJobs) == 0 {
		return fmt.Errorf("num_jobs: at least one job count is required")
	}
	if len(c.IOEngines) == 0 {
		return fmt.Errorf("io_engines: at least one IO engine is required")
	}
	for _, p := range c.Patterns {
		if !knownPatterns[p] {
			return fmt.Errorf("unknown rw pattern %q", p)
		}
	}
	for _, d := range c.IODepths {
		if d <= 0 {
			return fmt.Errorf("iodepth must be positive, got %d", d)
		}
	}
	for _, n := range c.NumJobs {
		if n <= 0 {
			return fmt.Errorf("numjobs must be positive, got %d", n)
		}
	}
	return nil
}
