// Package shooter implements the arcade shooter simulation: a player ship
// holding off descending waves of enemy ships. The package never touches a
// window or a terminal; frontends hand it a Surface to draw on and an input
// frame per tick.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Sprite identifiers used by the simulation.
const (
	SpriteBackground  = "background"
	SpritePlayer      = "ship_yellow"
	SpritePlayerLaser = "laser_yellow"
)

// SpriteIDs lists every sprite the simulation needs.
func SpriteIDs() []string {
	ids := []string{SpriteBackground, SpritePlayer, SpritePlayerLaser}
	for _, v := range Variants() {
		pair := variantSprites[v]
		ids = append(ids, pair.ship, pair.laser)
	}
	return ids
}

// GameContext carries everything a game needs that outlives a single run:
// field geometry, tick rate, tuning, resolved sprites and the random source.
type GameContext struct {
	Width    int
	Height   int
	TickRate int
	Config   config.ShooterConfig
	Rand     *rand.Rand

	sprites map[string]*assets.Sprite
}

// NewContext resolves the sprite table and seeds the random source.
// It fails with assets.ErrAssetMissing if any sprite is not registered, and
// rejects configurations that Validate does not accept.
func NewContext(rt core.RuntimeConfig, cfg config.ShooterConfig) (*GameContext, error) {
	if rt.FieldW <= 0 || rt.FieldH <= 0 {
		return nil, fmt.Errorf("shooter: invalid field size %dx%d", rt.FieldW, rt.FieldH)
	}
	if rt.TickRate <= 0 {
		return nil, fmt.Errorf("shooter: invalid tick rate %d", rt.TickRate)
	}

	sprites, err := assets.Resolve(SpriteIDs()...)
	if err != nil {
		return nil, fmt.Errorf("shooter: resolve sprites: %w", err)
	}

	cfg.Field.Width = rt.FieldW
	cfg.Field.Height = rt.FieldH
	cfg.Timing.TickRate = rt.TickRate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("shooter: %w", err)
	}

	return &GameContext{
		Width:    rt.FieldW,
		Height:   rt.FieldH,
		TickRate: rt.TickRate,
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(rt.Seed)), //#nosec G404 -- gameplay randomness
		sprites:  sprites,
	}, nil
}

// Sprite returns a resolved sprite. The table is complete after NewContext,
// so a nil result means the id is not one of SpriteIDs.
func (c *GameContext) Sprite(id string) *assets.Sprite {
	return c.sprites[id]
}

// CooldownThreshold is the number of ticks a combatant waits between shots.
func (c *GameContext) CooldownThreshold() int {
	return c.Config.CooldownTicks()
}
