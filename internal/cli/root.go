// Package cli wires the cobra commands for the fio-test binary.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "fio-test",
		Short: "SSD/block-device IOPS tuning tool built on fio",
		Long: `fio-test drives fio across a grid of parameters (rw pattern, block
size, queue depth, job count, IO engine), records every run's combined
read+write IOPS to a CSV table, and reports the best-performing
combination. Use 'sweep --help' for the grid options.`,
	}
)

// Execute executes the root command. SIGINT/SIGTERM cancel the command
// context, which aborts a sweep between runs while keeping the rows
// written so far.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fio_test.yaml)")
}
