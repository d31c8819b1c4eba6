package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/platformkit/internal/placeholders"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate placeholder button icons",
	Long:  `Draws the left, right and up arrow icons and saves them under the configured names in the asset directory.`,
	RunE:  runIcons,
}

func runIcons(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	icons := cfg.Controller.Icons
	written, err := placeholders.GenerateIcons(cfg.Assets.Dir, placeholders.IconNames{
		Left:  icons.Left,
		Right: icons.Right,
		Up:    icons.Up,
	})
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Info("wrote icon", "path", path)
	}
	return nil
}
