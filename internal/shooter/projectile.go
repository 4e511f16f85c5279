package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/collision"
)

// Projectile is a laser shot. It moves vertically and belongs to the
// combatant that fired it.
type Projectile struct {
	X, Y int

	sprite  *assets.Sprite
	removed bool
}

// NewProjectile creates a projectile with its top-left corner at (x, y).
func NewProjectile(x, y int, sprite *assets.Sprite) *Projectile {
	return &Projectile{X: x, Y: y, sprite: sprite}
}

// Position returns the top-left corner.
func (p *Projectile) Position() (int, int) { return p.X, p.Y }

// Sprite returns the projectile image.
func (p *Projectile) Sprite() *assets.Sprite { return p.sprite }

// Move shifts the projectile vertically; negative velocity moves it up.
func (p *Projectile) Move(vel int) {
	p.Y += vel
}

// OffScreen reports whether the projectile has left the field vertically.
func (p *Projectile) OffScreen(height int) bool {
	return p.Y < 0 || p.Y > height
}

// Collides reports a pixel collision with another body.
func (p *Projectile) Collides(b collision.Body) bool {
	return collision.Collide(p, b)
}

// Removed reports whether the projectile is marked for removal.
func (p *Projectile) Removed() bool {
	return p.removed
}

// Draw blits the projectile.
func (p *Projectile) Draw(s Surface) {
	s.Blit(p.sprite, p.X, p.Y)
}
