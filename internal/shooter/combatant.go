package shooter

import (
	"slices"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/collision"
)

// Target is something a projectile can damage.
type Target interface {
	collision.Body
	Damage(amount int)
}

// Resolution counts how a batch of projectiles was resolved in one tick.
// Every projectile ends up in exactly one bucket: expired, hit or still alive.
type Resolution struct {
	Expired int      // left the field
	Hits    int      // struck a target
	Struck  []*Enemy // enemies removed by player lasers
}

// Combatant is the state shared by the player and enemies: a ship with
// health, a fire cooldown and the projectiles it owns.
type Combatant struct {
	X, Y   int
	Health int

	cooldown int
	fired    int
	ship     *assets.Sprite
	laser    *assets.Sprite
	lasers   []*Projectile
	ctx      *GameContext
}

func newCombatant(ctx *GameContext, x, y, health int, ship, laser *assets.Sprite) Combatant {
	return Combatant{X: x, Y: y, Health: health, ship: ship, laser: laser, ctx: ctx}
}

// Position returns the top-left corner of the ship.
func (c *Combatant) Position() (int, int) { return c.X, c.Y }

// Sprite returns the ship image.
func (c *Combatant) Sprite() *assets.Sprite { return c.ship }

// Width returns the ship width in logical pixels.
func (c *Combatant) Width() int { return c.ship.Width() }

// Height returns the ship height in logical pixels.
func (c *Combatant) Height() int { return c.ship.Height() }

// Collides reports a pixel collision between the ship and another body.
func (c *Combatant) Collides(b collision.Body) bool {
	return collision.Collide(c, b)
}

// Damage subtracts health. Health may go negative; callers treat <= 0 as
// destroyed.
func (c *Combatant) Damage(amount int) {
	c.Health -= amount
}

// Cooldown returns the current cooldown counter.
func (c *Combatant) Cooldown() int { return c.cooldown }

// Fired returns the number of projectiles fired so far.
func (c *Combatant) Fired() int { return c.fired }

// Projectiles returns the live projectiles. The slice must not be modified.
func (c *Combatant) Projectiles() []*Projectile { return c.lasers }

// Shoot fires a projectile from the ship position if the cooldown allows.
// It reports whether a projectile was fired.
func (c *Combatant) Shoot() bool {
	return c.fire(c.X, c.Y)
}

func (c *Combatant) fire(x, y int) bool {
	if c.cooldown != 0 {
		return false
	}
	c.lasers = append(c.lasers, NewProjectile(x, y, c.laser))
	c.cooldown = 1
	c.fired++
	return true
}

// AdvanceCooldown steps the fire limiter: once the counter reaches the
// threshold it resets to zero, otherwise a running counter keeps counting.
func (c *Combatant) AdvanceCooldown() {
	switch {
	case c.cooldown >= c.ctx.CooldownThreshold():
		c.cooldown = 0
	case c.cooldown > 0:
		c.cooldown++
	}
}

// AdvanceProjectiles moves every projectile by vel and resolves it against
// a single target. A projectile leaving the field is removed; one that hits
// the target deals damage and is removed.
func (c *Combatant) AdvanceProjectiles(vel int, target Target) Resolution {
	c.AdvanceCooldown()

	var res Resolution
	damage := c.ctx.Config.Combat.Damage
	for _, p := range c.lasers {
		p.Move(vel)
		switch {
		case p.OffScreen(c.ctx.Height):
			p.removed = true
			res.Expired++
		case target != nil && p.Collides(target):
			target.Damage(damage)
			p.removed = true
			res.Hits++
		}
	}
	c.compact()
	return res
}

// compact drops projectiles marked during the last scan.
func (c *Combatant) compact() {
	c.lasers = slices.DeleteFunc(c.lasers, (*Projectile).Removed)
}

// Draw blits the ship and then its projectiles.
func (c *Combatant) Draw(s Surface) {
	s.Blit(c.ship, c.X, c.Y)
	for _, p := range c.lasers {
		p.Draw(s)
	}
}
