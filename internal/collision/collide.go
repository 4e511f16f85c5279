package collision

import (
	"sync"

	"github.com/vovakirdan/space-shooter/internal/assets"
)

// Body is anything with a position and a sprite.
type Body interface {
	Position() (x, y int)
	Sprite() *assets.Sprite
}

// Cache memoizes masks per sprite so they are built once, not every frame.
type Cache struct {
	mu    sync.RWMutex
	masks map[*assets.Sprite]*Mask
}

// NewCache creates an empty mask cache.
func NewCache() *Cache {
	return &Cache{masks: make(map[*assets.Sprite]*Mask)}
}

// For returns the mask of s, building it on first use.
func (c *Cache) For(s *assets.Sprite) *Mask {
	c.mu.RLock()
	m, ok := c.masks[s]
	c.mu.RUnlock()
	if ok {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.masks[s]; ok {
		return m
	}
	m = FromSprite(s)
	c.masks[s] = m
	return m
}

// Len returns the number of cached masks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.masks)
}

var shared = NewCache()

// MaskOf returns the shared cached mask of a sprite.
func MaskOf(s *assets.Sprite) *Mask {
	return shared.For(s)
}

// Collide reports whether the solid pixels of two bodies overlap at their
// current positions. It has no side effects.
func Collide(a, b Body) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return Overlap(MaskOf(a.Sprite()), MaskOf(b.Sprite()), bx-ax, by-ay)
}
