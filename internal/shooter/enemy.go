package shooter

import (
	"errors"
	"fmt"
)

// ErrInvalidVariant is returned when an enemy is built with an unknown color.
var ErrInvalidVariant = errors.New("invalid enemy variant")

// Variant is the color of an enemy ship. It selects the ship and laser
// sprites and never changes after construction.
type Variant int

const (
	VariantRed Variant = iota
	VariantGreen
	VariantBlue
)

type spritePair struct {
	ship  string
	laser string
}

var variantSprites = map[Variant]spritePair{
	VariantRed:   {ship: "ship_red", laser: "laser_red"},
	VariantGreen: {ship: "ship_green", laser: "laser_green"},
	VariantBlue:  {ship: "ship_blue", laser: "laser_blue"},
}

// Variants returns all valid variants in spawn order.
func Variants() []Variant {
	return []Variant{VariantRed, VariantGreen, VariantBlue}
}

func (v Variant) String() string {
	switch v {
	case VariantRed:
		return "red"
	case VariantGreen:
		return "green"
	case VariantBlue:
		return "blue"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts a color name to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("shooter: variant %q: %w", s, ErrInvalidVariant)
}

// Enemy is a descending enemy ship.
type Enemy struct {
	Combatant

	variant Variant
	removed bool
}

// NewEnemy creates an enemy of the given color at (x, y).
func NewEnemy(ctx *GameContext, x, y int, v Variant) (*Enemy, error) {
	pair, ok := variantSprites[v]
	if !ok {
		return nil, fmt.Errorf("shooter: variant %d: %w", int(v), ErrInvalidVariant)
	}
	return &Enemy{
		Combatant: newCombatant(ctx, x, y, ctx.Config.Enemies.Health,
			ctx.Sprite(pair.ship), ctx.Sprite(pair.laser)),
		variant: v,
	}, nil
}

// Variant returns the enemy color.
func (e *Enemy) Variant() Variant { return e.variant }

// Removed reports whether the enemy is marked for removal this tick.
func (e *Enemy) Removed() bool { return e.removed }

// Move drifts the enemy downward.
func (e *Enemy) Move(vel int) {
	e.Y += vel
}

// Shoot fires from a fixed horizontal offset to line the laser up with
// the ship's nose.
func (e *Enemy) Shoot() bool {
	return e.fire(e.X+e.ctx.Config.Enemies.ShotOffsetX, e.Y)
}
