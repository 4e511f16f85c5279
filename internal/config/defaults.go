package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the reference configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  750,
			Height: 750,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Player: PlayerConfig{
			StartX:          300,
			StartY:          630,
			Velocity:        5,
			Health:          100,
			Lives:           5,
			BottomMargin:    15,
			HealthBarOffset: 10,
			HealthBarHeight: 10,
		},
		Enemies: EnemyConfig{
			Velocity:          1,
			Health:            100,
			ShotOffsetX:       -20,
			FirePeriodSeconds: 4,
		},
		Waves: WaveConfig{
			StartLevel:       0,
			StartLength:      0,
			Step:             5,
			SpawnMinX:        50,
			SpawnRightMargin: 100,
			SpawnMinY:        -1500,
			SpawnMaxY:        -100,
		},
		Combat: CombatConfig{
			LaserVelocity:   5,
			Damage:          10,
			CooldownSeconds: 0.5,
		},
		Input: InputConfig{
			InitialHoldTicks: 30,
			RepeatHoldTicks:  6,
		},
		HUD: HUDConfig{
			Margin: 10,
		},
		Session: SessionConfig{
			LostSeconds: 3,
			MenuTitle:   "Press fire to begin...",
			LostBanner:  "You Lost!!",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
