package assets

import "github.com/vovakirdan/space-shooter/internal/core"

// Sprite is an immutable palette-indexed bitmap.
// Art pixels are stored once; each covers Scale x Scale logical pixels.
type Sprite struct {
	ID    string
	Scale int

	artW int
	artH int
	art  []core.Color // row-major, artW*artH
}

// NewSprite builds a sprite from rows of art pixels. All rows must have the
// same length and scale must be positive.
func NewSprite(id string, scale int, rows [][]core.Color) (*Sprite, error) {
	if id == "" {
		return nil, errSprite(id, "empty id")
	}
	if scale <= 0 {
		return nil, errSprite(id, "scale must be positive")
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errSprite(id, "empty art")
	}

	w, h := len(rows[0]), len(rows)
	art := make([]core.Color, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, errSprite(id, "row %d has width %d, expected %d", y, len(row), w)
		}
		art = append(art, row...)
	}

	return &Sprite{ID: id, Scale: scale, artW: w, artH: h, art: art}, nil
}

// Width returns the sprite width in logical pixels.
func (s *Sprite) Width() int {
	return s.artW * s.Scale
}

// Height returns the sprite height in logical pixels.
func (s *Sprite) Height() int {
	return s.artH * s.Scale
}

// Bounds returns the sprite rectangle when drawn with its top-left at (x, y).
func (s *Sprite) Bounds(x, y int) core.Rect {
	return core.NewRect(x, y, s.Width(), s.Height())
}

// ArtSize returns the art dimensions (unscaled).
func (s *Sprite) ArtSize() (w, h int) {
	return s.artW, s.artH
}

// ArtAt returns the art pixel at (ax, ay), or ColorNone outside the art.
func (s *Sprite) ArtAt(ax, ay int) core.Color {
	if ax < 0 || ay < 0 || ax >= s.artW || ay >= s.artH {
		return core.ColorNone
	}
	return s.art[ay*s.artW+ax]
}

// At returns the color of the logical pixel (x, y) relative to the sprite's
// top-left corner.
func (s *Sprite) At(x, y int) core.Color {
	if x < 0 || y < 0 {
		return core.ColorNone
	}
	return s.ArtAt(x/s.Scale, y/s.Scale)
}

// Opaque reports whether the logical pixel (x, y) is drawn.
func (s *Sprite) Opaque(x, y int) bool {
	return s.At(x, y).Opaque()
}
