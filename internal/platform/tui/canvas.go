package tui

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// HalfBlock draws two vertical dots per cell: foreground on top,
// background below.
const HalfBlock = '▀'

// canvasBg fills dots nothing was drawn on.
const canvasBg = core.ColorBlack

const borderColor = core.ColorGray

type textCell struct {
	x, y int
	r    rune
	c    core.Color
}

// Canvas is a shooter surface backed by a terminal screen. The field is
// scaled down to dots, two dots per cell vertically, and centered.
type Canvas struct {
	screen *core.Screen
	fieldW int
	fieldH int

	scale int // logical pixels per dot
	dotW  int
	dotH  int
	offX  int // cell offset of the field
	offY  int
	dots  []core.Color
	texts []textCell
}

// NewCanvas creates a canvas mapping a fieldW x fieldH field onto screen.
func NewCanvas(screen *core.Screen, fieldW, fieldH int) *Canvas {
	c := &Canvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
	c.Layout()
	return c
}

// Layout recomputes the scale after the screen changed size.
func (c *Canvas) Layout() {
	cols, rows := max(c.screen.Width(), 1), max(c.screen.Height(), 1)
	c.scale = max(ceilDiv(c.fieldW, cols), ceilDiv(c.fieldH, rows*2), 1)
	c.dotW = ceilDiv(c.fieldW, c.scale)
	c.dotH = ceilDiv(c.fieldH, c.scale)
	c.offX = max((c.screen.Width()-c.dotW)/2, 0)
	c.offY = max((c.screen.Height()-ceilDiv(c.dotH, 2))/2, 0)
	c.dots = make([]core.Color, c.dotW*c.dotH)
	c.texts = c.texts[:0]
}

// Scale returns the number of logical pixels per dot.
func (c *Canvas) Scale() int { return c.scale }

// DotSize returns the field size in dots.
func (c *Canvas) DotSize() (w, h int) { return c.dotW, c.dotH }

// Dot returns the color of a dot, for tests and screenshots.
func (c *Canvas) Dot(dx, dy int) core.Color {
	if dx < 0 || dy < 0 || dx >= c.dotW || dy >= c.dotH {
		return core.ColorNone
	}
	return c.dots[dy*c.dotW+dx]
}

// Begin clears the canvas for a new frame.
func (c *Canvas) Begin() {
	for i := range c.dots {
		c.dots[i] = core.ColorNone
	}
	c.texts = c.texts[:0]
}

// Flush writes the frame into the screen. When the terminal has room
// around the field, the field gets a border.
func (c *Canvas) Flush() {
	c.screen.Fill(canvasBg)
	rows := ceilDiv(c.dotH, 2)
	if c.offX > 0 && c.offY > 0 {
		c.screen.DrawBox(core.NewRect(c.offX-1, c.offY-1, c.dotW+2, rows+2), borderColor)
	}
	for cy := 0; cy < rows; cy++ {
		for dx := range c.dotW {
			top := orBg(c.Dot(dx, cy*2))
			bottom := orBg(c.Dot(dx, cy*2+1))
			c.screen.SetCell(c.offX+dx, c.offY+cy, core.Cell{Rune: HalfBlock, Fg: top, Bg: bottom})
		}
	}
	for _, t := range c.texts {
		c.screen.SetCell(t.x, t.y, core.Cell{Rune: t.r, Fg: t.c, Bg: canvasBg})
	}
}

func orBg(col core.Color) core.Color {
	if col == core.ColorNone {
		return canvasBg
	}
	return col
}

// fill paints every dot overlapping the logical rectangle.
func (c *Canvas) fill(r core.Rect, col core.Color) {
	if r.Empty() || !col.Opaque() {
		return
	}
	x0 := max(floorDiv(r.X, c.scale), 0)
	y0 := max(floorDiv(r.Y, c.scale), 0)
	x1 := min(floorDiv(r.Right()-1, c.scale), c.dotW-1)
	y1 := min(floorDiv(r.Bottom()-1, c.scale), c.dotH-1)
	for dy := y0; dy <= y1; dy++ {
		row := c.dots[dy*c.dotW:]
		for dx := x0; dx <= x1; dx++ {
			row[dx] = col
		}
	}
}

// Blit paints the opaque art pixels of a sprite. Thin details still show up
// because any dot a pixel touches is painted.
func (c *Canvas) Blit(s *assets.Sprite, x, y int) {
	aw, ah := s.ArtSize()
	for ay := range ah {
		for ax := range aw {
			col := s.ArtAt(ax, ay)
			if !col.Opaque() {
				continue
			}
			c.fill(core.NewRect(x+ax*s.Scale, y+ay*s.Scale, s.Scale, s.Scale), col)
		}
	}
}

// Stretch samples the sprite once per dot inside dst.
func (c *Canvas) Stretch(s *assets.Sprite, dst core.Rect) {
	if dst.Empty() {
		return
	}
	aw, ah := s.ArtSize()
	x0 := max(floorDiv(dst.X, c.scale), 0)
	y0 := max(floorDiv(dst.Y, c.scale), 0)
	x1 := min(floorDiv(dst.Right()-1, c.scale), c.dotW-1)
	y1 := min(floorDiv(dst.Bottom()-1, c.scale), c.dotH-1)
	for dy := y0; dy <= y1; dy++ {
		py := dy*c.scale + c.scale/2 - dst.Y
		ay := core.Clamp(py*ah/dst.H, 0, ah-1)
		for dx := x0; dx <= x1; dx++ {
			px := dx*c.scale + c.scale/2 - dst.X
			ax := core.Clamp(px*aw/dst.W, 0, aw-1)
			if col := s.ArtAt(ax, ay); col.Opaque() {
				c.dots[dy*c.dotW+dx] = col
			}
		}
	}
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	c.fill(r, col)
}

// DrawText places a label on the cell grid, one character per cell.
func (c *Canvas) DrawText(text string, x, y int, col core.Color) {
	cx := c.offX + floorDiv(x, c.scale)
	cy := c.offY + floorDiv(floorDiv(y, c.scale), 2)
	for i, r := range []rune(text) {
		c.texts = append(c.texts, textCell{x: cx + i, y: cy, r: r, c: col})
	}
}

// MeasureText reports the logical size of a label: one cell per rune.
func (c *Canvas) MeasureText(text string) (int, int) {
	return len([]rune(text)) * c.scale, 2 * c.scale
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
