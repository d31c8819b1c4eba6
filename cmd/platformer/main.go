// platformer is a small demo game for the on-screen platformer controller.
//
// Usage:
//
//	platformer run      - Play the demo
//	platformer icons    - Write placeholder button icons into the asset dir
//
// Global flags:
//
//	--config <path>  - YAML config (default: ./configs/platformkit.yaml, then built-in)
//	--assets <dir>   - Asset directory, overrides the config
//	--debug          - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/platformkit/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagAssets string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer controller demo",
	Long: `A tiny platformer that shows the touch and keyboard controller:
move with the left two buttons or the arrow keys, jump with the right
button or the up arrow. F1 toggles the button hints.

Examples:
  platformer icons
  platformer run
  platformer run --config configs/phone.yaml --debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(iconsCmd)
}

// setup loads the config and builds the logger shared by every command.
func setup() (*config.Config, *log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	return cfg, logger, nil
}
