package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-shooter/internal/platform/tui"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the shooter in the terminal with a launcher menu.

Controls:
  WASD/Arrows  - Move
  Space        - Fire (hold)
  Enter        - Start a run
  P            - Pause
  Esc/B        - Back to the launcher (title screen only)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Logs go to ~/.shooter/shooter.log.

Examples:
  shooter play
  shooter play --player ace --fps 30
  shooter play --config ./my-shooter.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logFile, closeLog := openLogFile()
	defer closeLog()
	logger := newLogger(logFile, "shooter")

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: playerName(flagPlayer),
		Seed:   flagSeed,
	}

	// Menu loop
	for {
		choice, err := tui.RunMenu(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		switch choice {
		case tui.ChoicePlay:
			backToMenu, err := tui.Run(opts, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !backToMenu {
				return
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, opts.Player, cfg.Timing.TickRate, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}

		// Pick up a resized terminal between screens
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
	}
}
