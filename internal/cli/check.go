package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mick4994/fio-test/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the target device and the fio installation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if deviceOverride != "" {
			cfg.Device = deviceOverride
		}

		binPath, err := exec.LookPath(cfg.FioBinary)
		if err != nil {
			return fmt.Errorf("fio binary %q not found in PATH: %w", cfg.FioBinary, err)
		}
		fmt.Printf("fio: %s\n", binPath)

		version, err := exec.CommandContext(cmd.Context(), binPath, "--version").Output()
		if err != nil {
			return fmt.Errorf("fio --version failed: %w", err)
		}
		fmt.Printf("version: %s\n", strings.TrimSpace(string(version)))

		if cfg.Device == "" {
			fmt.Println("device: none configured (pass --device or set it in the config file)")
			return nil
		}

		info, err := os.Stat(cfg.Device)
		if err != nil {
			return fmt.Errorf("device %s is not accessible: %w", cfg.Device, err)
		}
		fmt.Printf("device: %s (mode %s)\n", cfg.Device, info.Mode())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&deviceOverride, "device", "", "Device or file to check")
}
