// shooter is a single-player 2D arcade shooter for the terminal, a window
// or an SSH server.
//
// Usage:
//
//	shooter play             - Play in the terminal with a launcher menu
//	shooter window           - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter scores           - Show the best runs
//	shooter simulate         - Run an autopilot session without a display
//	shooter sprites          - List the loaded sprites
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.shooter/shooter.db)
//	--config <path>      - Use a custom shooter.yaml
//	--sheet <path>       - Load a custom sprite sheet
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSheet    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - survive the waves",
	Long: `Space Shooter is a single-player arcade shooter. Fly the yellow ship,
shoot the red, green and blue enemies, and survive ever longer waves.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View the best runs
  simulate  - Run an autopilot session headless
  sprites   - List the loaded sprites
  config    - Print the effective configuration

Examples:
  shooter play
  shooter window --seed 42
  shooter serve --ssh :2222
  shooter simulate --ticks 3600 --fast`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter.yaml")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "Path to custom sprite sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads shooter.yaml, applies the global flags and loads the
// configured sprite sheet on top of the embedded one.
func loadConfig() config.ShooterConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	config.Overrides{TickRate: flagFPS, Sheet: flagSheet}.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	if cfg.Assets.Sheet != "" {
		if _, err := assets.LoadSheetFile(cfg.Assets.Sheet); err != nil {
			fatalf("%v", err)
		}
	}
	return cfg
}

// newLogger builds the command logger. A nil w logs to stderr.
func newLogger(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("%v", err)
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.shooter/shooter.log for frontends that own the
// terminal. It falls back to discarding output.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".shooter")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "shooter.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// openStore opens the run history. A failure is a warning: play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	return store
}

// playerName is the local user name recorded with runs.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}
