package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Surface is the drawing target the simulation renders onto. Coordinates
// are logical field pixels; the implementation decides how they map to
// cells or screen pixels.
type Surface interface {
	// Blit draws the opaque pixels of a sprite with its top-left at (x, y).
	Blit(s *assets.Sprite, x, y int)
	// Stretch draws a sprite scaled to fill dst.
	Stretch(s *assets.Sprite, dst core.Rect)
	// FillRect fills a rectangle with a solid color.
	FillRect(r core.Rect, c core.Color)
	// DrawText draws a label with its top-left at (x, y).
	DrawText(text string, x, y int, c core.Color)
	// MeasureText returns the size a label would occupy.
	MeasureText(text string) (w, h int)
}

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpBlit OpKind = iota
	OpStretch
	OpFillRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpBlit:
		return "blit"
	case OpStretch:
		return "stretch"
	case OpFillRect:
		return "fill"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawOp is one recorded draw call.
type DrawOp struct {
	Kind   OpKind
	Sprite *assets.Sprite
	Rect   core.Rect // destination; for blits the sprite bounds
	Color  core.Color
	Text   string
}

// TextMeasurer reports the size of a label.
type TextMeasurer func(text string) (w, h int)

// Fixed glyph metrics used when no measurer is given.
const (
	DefaultGlyphW = 7
	DefaultGlyphH = 13
)

// DisplayList is a Surface that records draw calls for later replay.
// It lets a frontend run the tick in one callback and draw in another
// while the picture still reflects the state at draw time.
type DisplayList struct {
	ops     []DrawOp
	measure TextMeasurer
}

// NewDisplayList creates an empty display list. A nil measurer uses fixed
// DefaultGlyphW x DefaultGlyphH glyphs.
func NewDisplayList(measure TextMeasurer) *DisplayList {
	if measure == nil {
		measure = func(text string) (int, int) {
			return len([]rune(text)) * DefaultGlyphW, DefaultGlyphH
		}
	}
	return &DisplayList{measure: measure}
}

// Reset drops all recorded operations, keeping capacity.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Ops returns the recorded operations in order.
func (d *DisplayList) Ops() []DrawOp {
	return d.ops
}

// Blit records a sprite blit.
func (d *DisplayList) Blit(s *assets.Sprite, x, y int) {
	d.ops = append(d.ops, DrawOp{Kind: OpBlit, Sprite: s, Rect: s.Bounds(x, y)})
}

// Stretch records a scaled sprite draw.
func (d *DisplayList) Stretch(s *assets.Sprite, dst core.Rect) {
	d.ops = append(d.ops, DrawOp{Kind: OpStretch, Sprite: s, Rect: dst})
}

// FillRect records a filled rectangle.
func (d *DisplayList) FillRect(r core.Rect, c core.Color) {
	d.ops = append(d.ops, DrawOp{Kind: OpFillRect, Rect: r, Color: c})
}

// DrawText records a label.
func (d *DisplayList) DrawText(text string, x, y int, c core.Color) {
	w, h := d.measure(text)
	d.ops = append(d.ops, DrawOp{Kind: OpText, Rect: core.NewRect(x, y, w, h), Color: c, Text: text})
}

// MeasureText reports the label size.
func (d *DisplayList) MeasureText(text string) (int, int) {
	return d.measure(text)
}

// Replay issues the recorded operations against another surface.
func (d *DisplayList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpBlit:
			dst.Blit(op.Sprite, op.Rect.X, op.Rect.Y)
		case OpStretch:
			dst.Stretch(op.Sprite, op.Rect)
		case OpFillRect:
			dst.FillRect(op.Rect, op.Color)
		case OpText:
			dst.DrawText(op.Text, op.Rect.X, op.Rect.Y, op.Color)
		}
	}
}

// Texts returns the labels drawn, in order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, op := range d.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
