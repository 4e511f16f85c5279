// Package config provides YAML-based configuration loading for the shooter.
// Shipped values are the reference tuning; the only difficulty growth is the
// wave formula in the simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Waves   WaveConfig    `yaml:"waves"`
	Combat  CombatConfig  `yaml:"combat"`
	Input   InputConfig   `yaml:"input"`
	HUD     HUDConfig     `yaml:"hud"`
	Assets  AssetsConfig  `yaml:"assets"`
	Session SessionConfig `yaml:"session"`
}

// FieldConfig is the play field geometry in logical pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed simulation rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX          int `yaml:"start_x"`
	StartY          int `yaml:"start_y"`
	Velocity        int `yaml:"velocity"`
	Health          int `yaml:"health"`
	Lives           int `yaml:"lives"`
	BottomMargin    int `yaml:"bottom_margin"`
	HealthBarOffset int `yaml:"health_bar_offset"` // gap between sprite and bar
	HealthBarHeight int `yaml:"health_bar_height"`
}

// EnemyConfig defines enemy ships.
type EnemyConfig struct {
	Velocity          int `yaml:"velocity"`
	Health            int `yaml:"health"`
	ShotOffsetX       int `yaml:"shot_offset_x"`
	FirePeriodSeconds int `yaml:"fire_period_seconds"` // mean seconds between shots
}

// WaveConfig defines wave growth and spawn area. Spawn ranges are half-open:
// x in [SpawnMinX, width-SpawnRightMargin), y in [SpawnMinY, SpawnMaxY).
type WaveConfig struct {
	StartLevel       int `yaml:"start_level"`
	StartLength      int `yaml:"start_length"`
	Step             int `yaml:"step"`
	SpawnMinX        int `yaml:"spawn_min_x"`
	SpawnRightMargin int `yaml:"spawn_right_margin"`
	SpawnMinY        int `yaml:"spawn_min_y"`
	SpawnMaxY        int `yaml:"spawn_max_y"`
}

// CombatConfig defines lasers and damage.
type CombatConfig struct {
	LaserVelocity   int     `yaml:"laser_velocity"`
	Damage          int     `yaml:"damage"`
	CooldownSeconds float64 `yaml:"cooldown_seconds"`
}

// InputConfig tunes held-key emulation for terminals that only report key
// presses. A first press holds for InitialHoldTicks (the usual OS repeat
// delay); every repeat refreshes the hold to RepeatHoldTicks.
type InputConfig struct {
	InitialHoldTicks int `yaml:"initial_hold_ticks"`
	RepeatHoldTicks  int `yaml:"repeat_hold_ticks"`
}

// HUDConfig defines label placement.
type HUDConfig struct {
	Margin int `yaml:"margin"`
}

// AssetsConfig points at an optional user sprite sheet.
type AssetsConfig struct {
	Sheet string `yaml:"sheet"`
}

// SessionConfig defines the menu and loss screen.
type SessionConfig struct {
	LostSeconds int    `yaml:"lost_seconds"`
	MenuTitle   string `yaml:"menu_title"`
	LostBanner  string `yaml:"lost_banner"`
}

// CooldownTicks converts the cooldown duration to whole ticks.
func (c ShooterConfig) CooldownTicks() int {
	return max(int(c.Combat.CooldownSeconds*float64(c.Timing.TickRate)), 1)
}

// LostTicks converts the loss screen duration to ticks.
func (c ShooterConfig) LostTicks() int {
	return c.Session.LostSeconds * c.Timing.TickRate
}

// FireRange is the exclusive upper bound of the per-tick enemy fire roll:
// an enemy fires when rng.Intn(FireRange()) == 0. Validate keeps it positive.
func (c ShooterConfig) FireRange() int {
	return c.Enemies.FirePeriodSeconds * c.Timing.TickRate
}

// Runtime derives the platform runtime configuration. Screen size is left
// at the core default; frontends overwrite it with the real output size.
func (c ShooterConfig) Runtime(seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.FieldW = c.Field.Width
	rt.FieldH = c.Field.Height
	rt.TickRate = c.Timing.TickRate
	rt.Seed = seed
	return rt
}

// Validate checks that the configuration can drive a game.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Timing.TickRate > 0, "timing: tick_rate must be positive, got %d", c.Timing.TickRate)
	check(c.Player.Velocity > 0, "player: velocity must be positive, got %d", c.Player.Velocity)
	check(c.Player.Health > 0, "player: health must be positive, got %d", c.Player.Health)
	check(c.Player.Lives > 0, "player: lives must be positive, got %d", c.Player.Lives)
	check(c.Player.HealthBarHeight >= 0, "player: health_bar_height must not be negative, got %d", c.Player.HealthBarHeight)
	check(c.Enemies.Velocity > 0, "enemies: velocity must be positive, got %d", c.Enemies.Velocity)
	check(c.Enemies.Health > 0, "enemies: health must be positive, got %d", c.Enemies.Health)
	check(c.Enemies.FirePeriodSeconds > 0, "enemies: fire_period_seconds must be positive, got %d", c.Enemies.FirePeriodSeconds)
	check(c.Combat.LaserVelocity > 0, "combat: laser_velocity must be positive, got %d", c.Combat.LaserVelocity)
	check(c.Combat.Damage > 0, "combat: damage must be positive, got %d", c.Combat.Damage)
	check(c.Combat.CooldownSeconds > 0, "combat: cooldown_seconds must be positive, got %v", c.Combat.CooldownSeconds)
	check(c.Waves.StartLevel >= 0, "waves: start_level must not be negative, got %d", c.Waves.StartLevel)
	check(c.Waves.StartLength >= 0, "waves: start_length must not be negative, got %d", c.Waves.StartLength)
	check(c.Waves.Step > 0, "waves: step must be positive, got %d", c.Waves.Step)
	check(c.Waves.SpawnMinX < c.Field.Width-c.Waves.SpawnRightMargin,
		"waves: spawn x range [%d, %d) is empty", c.Waves.SpawnMinX, c.Field.Width-c.Waves.SpawnRightMargin)
	check(c.Waves.SpawnMinY < c.Waves.SpawnMaxY,
		"waves: spawn y range [%d, %d) is empty", c.Waves.SpawnMinY, c.Waves.SpawnMaxY)
	check(c.Session.LostSeconds >= 0, "session: lost_seconds must not be negative, got %d", c.Session.LostSeconds)
	check(c.Input.InitialHoldTicks >= 0 && c.Input.RepeatHoldTicks >= 0, "input: hold ticks must not be negative")

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
