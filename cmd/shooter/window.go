package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the shooter in a window at the field's native size.

Controls:
  WASD/Arrows  - Move
  Space        - Fire (hold)
  Enter        - Start a run
  P            - Pause
  Q/Esc        - Quit

Examples:
  shooter window
  shooter window --seed 42 --log-level debug`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: $USER)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(nil, "shooter-window")

	store := openStore(logger)

	runErr := gui.Run(gui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: playerName(flagPlayer),
		Seed:   flagSeed,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running window: %v", runErr)
	}
}
