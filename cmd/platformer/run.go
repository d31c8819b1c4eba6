package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/platformkit/internal/config"
	"chosenoffset.com/platformkit/internal/game"
	"chosenoffset.com/platformkit/internal/input"
	"chosenoffset.com/platformkit/internal/platformer"
	"chosenoffset.com/platformkit/internal/render"
	ebitenrender "chosenoffset.com/platformkit/internal/render/ebiten"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the demo",
	RunE:  runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader(cfg.Assets.Dir, logger)
	engine := ebitenrender.NewEngine()

	font, err := loadFont(cfg.Font)
	if err != nil {
		return err
	}
	common := game.NewCommon(renderer, font, cfg.Display.Width, cfg.Display.Height)

	// The HUD camera is fixed: one camera unit per logical pixel.
	controller, err := input.NewPlatformerController(loader,
		float64(cfg.Display.Width), float64(cfg.Display.Height),
		render.NewCamera(),
		input.Options{
			ButtonWidth:  cfg.Controller.ButtonWidth,
			GroundOffset: cfg.Controller.GroundOffset,
			HideHints:    cfg.Controller.HideHints,
			Icons: input.IconNames{
				Left:  cfg.Controller.Icons.Left,
				Right: cfg.Controller.Icons.Right,
				Up:    cfg.Controller.Icons.Up,
			},
			Logger: logger,
		})
	if err != nil {
		return fmt.Errorf("%w (run 'platformer icons' to generate placeholders)", err)
	}

	manager := platformer.NewManager(common, inputMgr, controller, logger)
	defer manager.Close()

	// Set up the window
	engine.SetWindowSize(cfg.WindowSize())
	engine.SetWindowTitle(cfg.Display.WindowTitle)
	engine.SetWindowResizable(cfg.Display.Resizable)

	logger.Info("starting game", "width", cfg.Display.Width, "height", cfg.Display.Height, "assets", cfg.Assets.Dir)
	return engine.RunGame(manager)
}

func loadFont(fc config.FontConfig) (render.Font, error) {
	if fc.Kind != config.FontGoRegular {
		return ebitenrender.NewBasicFont(), nil
	}
	f, err := ebitenrender.NewGoRegularFont(fc.Size)
	if err != nil {
		return nil, err
	}
	return f, nil
}
