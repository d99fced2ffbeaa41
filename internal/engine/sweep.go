package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Mick4994/fio-test/internal/config"
	"github.com/Mick4994/fio-test/internal/model"
	"github.com/Mick4994/fio-test/internal/output"
)

// Sweeper drives one full pass over the configured parameter grid.
// Runs execute strictly sequentially: each one saturates the device, and
// overlapping runs would corrupt each other's measurements.
type Sweeper struct {
	Config  *config.Config
	Adapter Adapter
	Logger  *slog.Logger
}

// NewSweeper creates a Sweeper using the given adapter for run
// execution.
func NewSweeper(cfg *config.Config, adapter Adapter, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		Config:  cfg,
		Adapter: adapter,
		Logger:  logger,
	}
}

// Run executes the full sweep and returns the best-performing
// configuration. Every enumerated config yields exactly one CSV row, in
// enumeration order; a failed run yields a zero-IOPS row and the sweep
// continues. A store write failure or a cancelled context aborts
// immediately: rows already written remain valid, but no selection is
// returned.
func (s *Sweeper) Run(ctx context.Context) (model.BestSelection, error) {
	if err := s.Config.Validate(); err != nil {
		return model.BestSelection{}, fmt.Errorf("invalid sweep configuration: %w", err)
	}

	configs, err := Enumerate(s.Config)
	if err != nil {
		return model.BestSelection{}, err
	}

	if err := os.MkdirAll(s.Config.OutputDir, 0o755); err != nil {
		return model.BestSelection{}, fmt.Errorf("create output directory %s: %w", s.Config.OutputDir, err)
	}

	csvPath := filepath.Join(s.Config.OutputDir, s.Config.OutputFile)
	store, err := output.NewResultWriter(csvPath)
	if err != nil {
		return model.BestSelection{}, fmt.Errorf("init result store at %s: %w", csvPath, err)
	}
	defer store.Close()

	jsonPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".jsonl"
	rowLog, err := output.NewRowLog(jsonPath)
	if err != nil {
		return model.BestSelection{}, fmt.Errorf("init row log at %s: %w", jsonPath, err)
	}
	defer rowLog.Close()

	total := len(configs)
	s.Logger.Info("starting sweep",
		slog.Int("total", total),
		slog.String("output", csvPath),
	)

	best := model.BestSelection{}

	for i, rc := range configs {
		if err := ctx.Err(); err != nil {
			return model.BestSelection{}, fmt.Errorf("sweep aborted after %d/%d runs: %w", i, total, err)
		}

		result, runErr := s.Adapter.Run(ctx, rc, OutputPath(s.Config.OutputDir, rc))
		if runErr != nil {
			// Recorded as a zero row below; the audit trail stays complete.
			s.Logger.Error("benchmark failed",
				slog.String("job", rc.Name()),
				slog.String("error", runErr.Error()),
			)
		}

		row := model.ResultRow{
			Config:    rc,
			IOPS:      CombinedIOPS(result),
			Timestamp: time.Now(),
		}

		if err := store.Append(row); err != nil {
			return model.BestSelection{}, fmt.Errorf("append result row %d/%d: %w", i+1, total, err)
		}
		if err := rowLog.Append(row); err != nil {
			s.Logger.Error("failed to append to row log", slog.String("error", err.Error()))
		}

		best = UpdateBest(best, row)

		s.Logger.Info("run complete",
			slog.String("run", fmt.Sprintf("%d/%d", i+1, total)),
			slog.String("rw", rc.Pattern),
			slog.String("bs", rc.BlockSize),
			slog.Int("iodepth", rc.IODepth),
			slog.Int("numjobs", rc.NumJobs),
			slog.String("ioengine", rc.IOEngine),
			slog.Float64("iops", row.IOPS),
			slog.Float64("best_iops", best.IOPS),
		)

		// Cool-down lets the device drain its queues and shed heat before
		// the next saturating workload.
		if i+1 < total {
			if err := s.coolDown(ctx); err != nil {
				return model.BestSelection{}, fmt.Errorf("sweep aborted after %d/%d runs: %w", i+1, total, err)
			}
		}
	}

	s.Logger.Info("sweep complete",
		slog.Int("runs", total),
		slog.Float64("best_iops", best.IOPS),
	)

	return best, nil
}

func (s *Sweeper) coolDown(ctx context.Context) error {
	if s.Config.Cooldown <= 0 {
		return nil
	}

	t := time.NewTimer(s.Config.Cooldown)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
