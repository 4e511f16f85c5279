package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// hudFace is the fixed 7x13 bitmap font used for every label.
var hudFace font.Face = basicfont.Face7x13

// MeasureText returns the pixel size of a label in the HUD font.
func MeasureText(s string) (int, int) {
	return font.MeasureString(hudFace, s).Ceil(), hudFace.Metrics().Height.Ceil()
}

// Surface draws onto an ebiten image. Sprite images are built once and
// reused across frames.
type Surface struct {
	dst    *ebiten.Image
	images map[*assets.Sprite]*ebiten.Image
}

// NewSurface creates an empty surface; Target sets the image to draw on.
func NewSurface() *Surface {
	return &Surface{images: make(map[*assets.Sprite]*ebiten.Image)}
}

// Target sets the image the next draw calls go to.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) image(sp *assets.Sprite) *ebiten.Image {
	img, ok := s.images[sp]
	if !ok {
		img = ebiten.NewImageFromImage(SpriteRGBA(sp))
		s.images[sp] = img
	}
	return img
}

// Blit draws a sprite at its own scale.
func (s *Surface) Blit(sp *assets.Sprite, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sp.Scale), float64(sp.Scale))
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(s.image(sp), op)
}

// Stretch draws a sprite scaled to fill dst.
func (s *Surface) Stretch(sp *assets.Sprite, dst core.Rect) {
	if dst.Empty() {
		return
	}
	aw, ah := sp.ArtSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(aw), float64(dst.H)/float64(ah))
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	s.dst.DrawImage(s.image(sp), op)
}

// FillRect fills a rectangle with a palette color.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	if r.Empty() || !c.Opaque() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(c), false)
}

// DrawText draws a label with its top-left at (x, y).
func (s *Surface) DrawText(label string, x, y int, c core.Color) {
	ascent := hudFace.Metrics().Ascent.Ceil()
	text.Draw(s.dst, label, hudFace, x, y+ascent, RGBA(c))
}

// MeasureText returns the pixel size of a label.
func (s *Surface) MeasureText(label string) (int, int) {
	return MeasureText(label)
}
