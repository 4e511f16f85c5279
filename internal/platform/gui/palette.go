// Package gui is the Ebiten window frontend. It draws the field pixel for
// pixel and reads true held-key state.
package gui

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// palette maps core colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:         colornames.Black,
	core.ColorRed:           colornames.Red,
	core.ColorGreen:         colornames.Limegreen,
	core.ColorYellow:        colornames.Gold,
	core.ColorBlue:          colornames.Dodgerblue,
	core.ColorMagenta:       colornames.Magenta,
	core.ColorCyan:          colornames.Cyan,
	core.ColorWhite:         colornames.White,
	core.ColorBrightRed:     colornames.Tomato,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Deepskyblue,
	core.ColorBrightMagenta: colornames.Violet,
	core.ColorBrightCyan:    colornames.Aquamarine,
	core.ColorBrightWhite:   colornames.Whitesmoke,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
	core.ColorNavy:          colornames.Midnightblue,
}

// RGBA returns the screen color of c. ColorNone is fully transparent.
func RGBA(c core.Color) color.RGBA {
	return palette[c]
}

// SpriteRGBA renders the art of a sprite at one pixel per art pixel.
// Transparent art stays transparent.
func SpriteRGBA(s *assets.Sprite) *image.RGBA {
	w, h := s.ArtSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if c := s.ArtAt(x, y); c.Opaque() {
				img.SetRGBA(x, y, RGBA(c))
			}
		}
	}
	return img
}
