// Package engine drives fio across the configured parameter grid and
// aggregates the per-run results.
package engine

import (
	"fmt"

	"github.com/Mick4994/fio-test/internal/config"
	"github.com/Mick4994/fio-test/internal/model"
)

// Enumerate expands the configured dimension lists into the full
// Cartesian product of run configurations. The order is fixed: pattern
// varies slowest, then block size, queue depth and job count, with the
// IO engine fastest. Re-running on the same config reproduces the
// identical sequence, which the result store relies on for positional
// correspondence between sweep order and row order.
func Enumerate(cfg *config.Config) ([]model.RunConfig, error) {
	dims := []struct {
		name string
		n    int
	}{
		{"patterns", len(cfg.Patterns)},
		{"block_sizes", len(cfg.BlockSizes)},
		{"io_depths", len(cfg.IODepths)},
		{"num_jobs", len(cfg.NumJobs)},
		{"io_engines", len(cfg.IOEngines)},
	}
	for _, d := range dims {
		if d.n == 0 {
			return nil, fmt.Errorf("sweep dimension %s is empty", d.name)
		}
	}

	total := len(cfg.Patterns) * len(cfg.BlockSizes) * len(cfg.IODepths) *
		len(cfg.NumJobs) * len(cfg.IOEngines)

	configs := make([]model.RunConfig, 0, total)
	for _, rw := range cfg.Patterns {
		for _, bs := range cfg.BlockSizes {
			for _, depth := range cfg.IODepths {
				for _, jobs := range cfg.NumJobs {
					for _, engine := range cfg.IOEngines {
						configs = append(configs, model.RunConfig{
							Pattern:   rw,
							BlockSize: bs,
							IODepth:   depth,
							NumJobs:   jobs,
							IOEngine:  engine,
							Direct:    cfg.Direct,
							Size:      cfg.Size,
							Runtime:   cfg.Runtime,
						})
					}
				}
			}
		}
	}

	return configs, nil
}
