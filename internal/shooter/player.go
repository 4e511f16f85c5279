package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Health bar colors.
const (
	HealthBarDanger = core.ColorRed
	HealthBarSafe   = core.ColorGreen
)

// Player is the single ship controlled by input.
type Player struct {
	Combatant

	maxHealth int
}

// NewPlayer creates the player at the configured start position.
func NewPlayer(ctx *GameContext) *Player {
	pc := ctx.Config.Player
	return &Player{
		Combatant: newCombatant(ctx, pc.StartX, pc.StartY, pc.Health,
			ctx.Sprite(SpritePlayer), ctx.Sprite(SpritePlayerLaser)),
		maxHealth: pc.Health,
	}
}

// MaxHealth returns the health the player started with.
func (p *Player) MaxHealth() int { return p.maxHealth }

// Move shifts the player by (dx, dy) steps of the configured velocity,
// keeping the ship inside the field and above the bottom margin.
func (p *Player) Move(dx, dy int) {
	pc := p.ctx.Config.Player
	p.X = core.Clamp(p.X+dx*pc.Velocity, 0, p.ctx.Width-p.Width())
	p.Y = core.Clamp(p.Y+dy*pc.Velocity, 0, p.ctx.Height-p.Height()-pc.BottomMargin)
}

// AdvanceProjectiles moves the player's lasers by vel and resolves each
// against the enemies. A laser stops at the first enemy it hits; that enemy
// takes damage and is marked removed, so later lasers skip it this tick.
func (p *Player) AdvanceProjectiles(vel int, enemies []*Enemy) Resolution {
	p.AdvanceCooldown()

	var res Resolution
	damage := p.ctx.Config.Combat.Damage
	for _, l := range p.lasers {
		l.Move(vel)
		if l.OffScreen(p.ctx.Height) {
			l.removed = true
			res.Expired++
			continue
		}
		for _, e := range enemies {
			if e.removed || !l.Collides(e) {
				continue
			}
			e.Damage(damage)
			e.removed = true
			l.removed = true
			res.Hits++
			res.Struck = append(res.Struck, e)
			break
		}
	}
	p.compact()
	return res
}

// HealthBar returns the background and foreground rectangles of the health
// bar. The foreground width follows health clamped to [0, max].
func (p *Player) HealthBar() (bg, fg core.Rect) {
	pc := p.ctx.Config.Player
	w := p.Width()
	y := p.Y + p.Height() + pc.HealthBarOffset
	bg = core.NewRect(p.X, y, w, pc.HealthBarHeight)

	filled := 0
	if p.maxHealth > 0 {
		filled = w * core.Clamp(p.Health, 0, p.maxHealth) / p.maxHealth
	}
	fg = core.NewRect(p.X, y, filled, pc.HealthBarHeight)
	return bg, fg
}

// Draw draws the ship, its lasers and the health bar.
func (p *Player) Draw(s Surface) {
	p.Combatant.Draw(s)
	bg, fg := p.HealthBar()
	s.FillRect(bg, HealthBarDanger)
	if !fg.Empty() {
		s.FillRect(fg, HealthBarSafe)
	}
}
