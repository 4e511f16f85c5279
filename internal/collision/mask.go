// Package collision provides pixel-accurate overlap tests between sprites.
// Masks are derived once per sprite and cached; Collide is a pure function
// of two positioned bodies.
package collision

import (
	"math/bits"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Mask is a 1-bit opacity bitmap in logical pixels.
type Mask struct {
	w, h   int
	stride int // 64-bit words per row
	bits   []uint64
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	w = max(w, 0)
	h = max(h, 0)
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, bits: make([]uint64, stride*h)}
}

// FromSprite derives the mask of every opaque pixel of a sprite.
func FromSprite(s *assets.Sprite) *Mask {
	m := NewMask(s.Width(), s.Height())
	aw, ah := s.ArtSize()
	for ay := range ah {
		for ax := range aw {
			if !s.ArtAt(ax, ay).Opaque() {
				continue
			}
			for y := ay * s.Scale; y < (ay+1)*s.Scale; y++ {
				for x := ax * s.Scale; x < (ax+1)*s.Scale; x++ {
					m.Set(x, y)
				}
			}
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Mask) Size() (w, h int) {
	return m.w, m.h
}

// Set marks the pixel (x, y) as solid. Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Get reports whether the pixel (x, y) is solid.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Overlap reports whether b, placed at offset (dx, dy) from a's top-left
// corner, shares at least one solid pixel with a.
// Overlap(a, b, dx, dy) == Overlap(b, a, -dx, -dy) for all inputs.
func Overlap(a, b *Mask, dx, dy int) bool {
	area, ok := core.NewRect(0, 0, a.w, a.h).Intersect(core.NewRect(dx, dy, b.w, b.h))
	if !ok {
		return false
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if a.Get(x, y) && b.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
