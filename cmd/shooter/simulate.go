package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/platform/history"
	"github.com/vovakirdan/space-shooter/internal/shooter"
)

var (
	flagSimTicks int
	flagSimFast  bool
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an autopilot session without a display",
	Long: `Drive a session with the built-in autopilot and report how far it got.

By default ticks are paced at the configured rate; --fast runs them back
to back. The final state hash identifies the run: the same seed and
config always produce the same hash.

Examples:
  shooter simulate --seed 42 --ticks 3600 --fast
  shooter simulate --log-level debug
  shooter simulate --fast --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Stop after this many ticks (0 = until the run ends)")
	simulateCmd.Flags().BoolVar(&flagSimFast, "fast", false, "Do not pace ticks at the tick rate")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record a finished run in the database as \"autopilot\"")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(nil, "shooter-sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gctx, err := shooter.NewContext(cfg.Runtime(seed), cfg)
	if err != nil {
		fatalf("%v", err)
	}
	session := shooter.NewSession(gctx)

	rec := history.NewRecorder(nil, logger, "autopilot")
	if flagSimSave {
		rec.Store = openStore(logger)
		if rec.Store != nil {
			defer rec.Store.Close()
		}
	}

	opts := shooter.RunOptions{
		MaxTicks: flagSimTicks,
		OnTick: func(_ core.StepResult, events []shooter.Event) {
			rec.LogEvents(events)
		},
	}
	if !flagSimFast {
		opts.Clock = core.NewClock(cfg.Timing.TickRate)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "seed", seed, "ticks", flagSimTicks, "fast", flagSimFast)
	start := time.Now()
	res, err := shooter.Run(ctx, session, shooter.Autopilot{}, opts)
	if err != nil {
		logger.Warn("simulation interrupted", "error", err)
	}
	if res.Terminated {
		rec.Finish(session)
	}

	fields := []any{
		"phase", session.Phase(),
		"level", res.State.Level,
		"lives", res.State.Lives,
		"kills", res.State.Score,
		"elapsed", time.Since(start).Round(time.Millisecond),
	}
	if g := session.Game(); g != nil {
		snap := g.Snapshot()
		fields = append(fields, "tick", g.Tick(), "hash", snap.Hash())
	}
	logger.Info("simulation finished", fields...)
}
