package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/Mick4994/fio-test/internal/model"
)

// Adapter runs one benchmark for a single configuration. An error return
// is an ordinary benchmark failure (tool exited non-zero, device busy,
// unreadable output); the sweep records it as a zero-IOPS row and moves
// on.
type Adapter interface {
	Run(ctx context.Context, cfg model.RunConfig, outputPath string) (*model.FioResult, error)
}

// FioRunner invokes the fio binary for a target device or file.
type FioRunner struct {
	Binary string
	Device string
	Logger *slog.Logger
}

// NewFioRunner creates a runner for the given fio binary and device.
func NewFioRunner(binary, device string, logger *slog.Logger) *FioRunner {
	return &FioRunner{
		Binary: binary,
		Device: device,
		Logger: logger.With(slog.String("device", device)),
	}
}

// Run executes fio with arguments derived one-to-one from cfg, writing
// the JSON result document to outputPath, then parses and returns it.
// The process runs under ctx and is killed if ctx is cancelled.
func (r *FioRunner) Run(ctx context.Context, cfg model.RunConfig, outputPath string) (*model.FioResult, error) {
	args := buildArgs(cfg, r.Device, outputPath)

	cmd := exec.CommandContext(ctx, r.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("starting fio",
		slog.String("job", cfg.Name()),
		slog.Int("runtime_s", cfg.Runtime),
	)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("fio %s failed: %w\nstderr: %s",
			cfg.Name(), err, stderr.String())
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("read fio output %s: %w", outputPath, err)
	}

	var result model.FioResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse fio output %s: %w", outputPath, err)
	}

	return &result, nil
}

func buildArgs(cfg model.RunConfig, device, outputPath string) []string {
	direct := "0"
	if cfg.Direct {
		direct = "1"
	}

	return []string{
		"--name=" + cfg.Name(),
		"--filename=" + device,
		"--size=" + cfg.Size,
		"--rw=" + cfg.Pattern,
		"--bs=" + cfg.BlockSize,
		"--iodepth=" + strconv.Itoa(cfg.IODepth),
		"--numjobs=" + strconv.Itoa(cfg.NumJobs),
		"--runtime=" + strconv.Itoa(cfg.Runtime),
		"--direct=" + direct,
		"--ioengine=" + cfg.IOEngine,
		"--group_reporting=1",
		"--output-format=json",
		"--output=" + outputPath,
	}
}

// OutputPath returns a collision-free path under dir for one run's raw
// fio document. The uuid suffix keeps repeated sweeps over the same grid
// from clobbering each other.
func OutputPath(dir string, cfg model.RunConfig) string {
	return filepath.Join(dir, fmt.Sprintf("fio_%s_%s.json", cfg.Name(), uuid.NewString()))
}
