package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mick4994/fio-test/internal/config"
	"github.com/Mick4994/fio-test/internal/engine"
	"github.com/Mick4994/fio-test/internal/model"
	"github.com/Mick4994/fio-test/internal/output"
)

var (
	runDevice  string
	runPattern string
	runBS      string
	runIODepth int
	runNumJobs int
	runRuntime int
	runEngine  string
	runSize    string
	runDirect  bool
	runOutDir  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single fio test and print a summary",
	Long: `Executes one fio benchmark with the given parameters and prints a
human-readable summary (IOPS, bandwidth, mean latency per direction).
The raw fio JSON document is kept in the output directory.`,
	Example: `  fio-test run --device /dev/nvme0n1 --rw randread --bs 4k --iodepth 32 --numjobs 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(runDevice); err != nil {
			return fmt.Errorf("device %s is not accessible: %w", runDevice, err)
		}

		rc := model.RunConfig{
			Pattern:   runPattern,
			BlockSize: runBS,
			IODepth:   runIODepth,
			NumJobs:   runNumJobs,
			IOEngine:  runEngine,
			Direct:    runDirect,
			Size:      runSize,
			Runtime:   runRuntime,
		}

		// Reuse the sweep validation by wrapping the single combination
		// as a one-point grid.
		cfg := config.DefaultConfig()
		cfg.Device = runDevice
		cfg.Size = runSize
		cfg.Runtime = runRuntime
		cfg.Patterns = []string{runPattern}
		cfg.BlockSizes = []string{runBS}
		cfg.IODepths = []int{runIODepth}
		cfg.NumJobs = []int{runNumJobs}
		cfg.IOEngines = []string{runEngine}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := os.MkdirAll(runOutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", runOutDir, err)
		}

		outPath := engine.OutputPath(runOutDir, rc)
		runner := engine.NewFioRunner(cfg.FioBinary, runDevice, output.Logger)

		result, err := runner.Run(cmd.Context(), rc, outPath)
		if err != nil {
			return err
		}

		printSummary(os.Stdout, result)
		fmt.Printf("Detailed results saved to %s\n", outPath)

		return nil
	},
}

func printSummary(w io.Writer, result *model.FioResult) {
	if result == nil || len(result.Jobs) == 0 {
		fmt.Fprintln(w, "no job statistics in fio output")
		return
	}

	job := result.Jobs[0]
	rule := strings.Repeat("-", 50)

	fmt.Fprintln(w, "\nTest summary:")
	fmt.Fprintln(w, rule)

	if job.Read.IOPS > 0 || job.Read.BW > 0 {
		fmt.Fprintln(w, "Read:")
		fmt.Fprintf(w, "  IOPS: %.2f\n", job.Read.IOPS)
		fmt.Fprintf(w, "  Bandwidth: %.2f KB/s (%.2f MB/s)\n", job.Read.BW, job.Read.BW/1024)
		fmt.Fprintf(w, "  Latency: %.2f ms\n", job.Read.LatNS.Mean/1e6)
	}
	if job.Write.IOPS > 0 || job.Write.BW > 0 {
		fmt.Fprintln(w, "Write:")
		fmt.Fprintf(w, "  IOPS: %.2f\n", job.Write.IOPS)
		fmt.Fprintf(w, "  Bandwidth: %.2f KB/s (%.2f MB/s)\n", job.Write.BW, job.Write.BW/1024)
		fmt.Fprintf(w, "  Latency: %.2f ms\n", job.Write.LatNS.Mean/1e6)
	}

	fmt.Fprintln(w, rule)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runDevice, "device", "", "Device or file to benchmark (required)")
	runCmd.Flags().StringVar(&runPattern, "rw", "randread", "Access pattern: read, write, randread, randwrite, randrw")
	runCmd.Flags().StringVar(&runBS, "bs", "4k", "Block size")
	runCmd.Flags().IntVar(&runIODepth, "iodepth", 32, "IO queue depth")
	runCmd.Flags().IntVar(&runNumJobs, "numjobs", 4, "Concurrent fio jobs")
	runCmd.Flags().IntVar(&runRuntime, "runtime", 60, "Run duration in seconds")
	runCmd.Flags().StringVar(&runEngine, "ioengine", "libaio", "IO engine: libaio, io_uring, sync, psync, vsync")
	runCmd.Flags().StringVar(&runSize, "size", "1G", "Test file size")
	runCmd.Flags().BoolVar(&runDirect, "direct", true, "Use O_DIRECT")
	runCmd.Flags().StringVarP(&runOutDir, "output-dir", "o", "result", "Directory for the raw fio JSON document")
	_ = runCmd.MarkFlagRequired("device")
}
