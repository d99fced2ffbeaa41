package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mick4994/fio-test/internal/config"
	"github.com/Mick4994/fio-test/internal/engine"
	"github.com/Mick4994/fio-test/internal/output"
)

var (
	deviceOverride   string
	outputOverride   string
	runtimeOverride  int
	cooldownOverride time.Duration
	quick            bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the full parameter sweep",
	Long: `Enumerates the Cartesian product of the configured parameter lists and
runs one fio benchmark per combination, strictly sequentially, with a
cool-down pause between runs. Every run appends one row to the result
CSV (flushed immediately, so partial progress survives a crash); a
failed run is recorded with 0 IOPS and the sweep continues.`,
	Example: `  # Full grid against an NVMe device (uses fio_test.yaml if present)
  fio-test sweep --device /dev/nvme0n1

  # Quick exploratory grid with a shorter cool-down
  fio-test sweep --device /dev/sdb --quick --cooldown 2s

  # Custom output directory
  fio-test sweep --device /dev/sdb -o ./benchmarks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if deviceOverride != "" {
			cfg.Device = deviceOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if runtimeOverride > 0 {
			cfg.Runtime = runtimeOverride
		}
		if cmd.Flags().Changed("cooldown") {
			cfg.Cooldown = cooldownOverride
		}
		if quick {
			cfg.ApplyQuickGrid()
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		if _, err := os.Stat(cfg.Device); err != nil {
			return fmt.Errorf("device %s is not accessible: %w", cfg.Device, err)
		}

		runner := engine.NewFioRunner(cfg.FioBinary, cfg.Device, output.Logger)
		sweeper := engine.NewSweeper(cfg, runner, output.Logger)

		best, err := sweeper.Run(cmd.Context())
		if err != nil {
			return err
		}

		if best.Config == nil {
			output.Logger.Warn("no configuration produced a non-zero IOPS; check device and fio installation")
			return nil
		}

		bc := *best.Config
		fmt.Printf("\nBest combination: rw=%s bs=%s iodepth=%d numjobs=%d ioengine=%s (%.2f IOPS)\n",
			bc.Pattern, bc.BlockSize, bc.IODepth, bc.NumJobs, bc.IOEngine, best.IOPS)
		fmt.Printf("Re-run it with:\n  fio-test run --device %s --rw %s --bs %s --iodepth %d --numjobs %d --ioengine %s\n",
			cfg.Device, bc.Pattern, bc.BlockSize, bc.IODepth, bc.NumJobs, bc.IOEngine)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&deviceOverride, "device", "", "Device or file to benchmark (e.g. /dev/nvme0n1)")
	sweepCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results")
	sweepCmd.Flags().IntVar(&runtimeOverride, "runtime", 0, "Per-run duration in seconds (overrides config)")
	sweepCmd.Flags().DurationVar(&cooldownOverride, "cooldown", 5*time.Second, "Pause between consecutive runs")
	sweepCmd.Flags().BoolVar(&quick, "quick", false, "Use the smaller exploratory grid")
}
