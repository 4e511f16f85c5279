package shooter

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

func newTestContext(t *testing.T, seed int64) *GameContext {
	t.Helper()
	return newTestContextWith(t, seed, config.DefaultShooterConfig())
}

func newTestContextWith(t *testing.T, seed int64, cfg config.ShooterConfig) *GameContext {
	t.Helper()
	ctx, err := NewContext(cfg.Runtime(seed), cfg)
	if err != nil {
		t.Fatalf("NewContext() error: %v", err)
	}
	return ctx
}

// quietConfig makes enemy fire practically impossible so tests can count
// damage from a single source.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.FirePeriodSeconds = 1_000_000_000
	return cfg
}

func mustEnemy(t *testing.T, ctx *GameContext, x, y int, v Variant) *Enemy {
	t.Helper()
	e, err := NewEnemy(ctx, x, y, v)
	if err != nil {
		t.Fatalf("NewEnemy() error: %v", err)
	}
	return e
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
