package core

import "strings"

// Color is a palette index shared by every frontend.
// Terminal frontends map it to ANSI codes, window frontends to RGBA.
type Color uint8

// ColorNone marks a transparent sprite pixel. On the screen buffer it means
// "terminal default".
const ColorNone Color = 0

// Palette entries.
const (
	ColorBlack Color = iota + 1
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
)

var colorNames = map[Color]string{
	ColorNone:          "none",
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorNavy:          "navy",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Opaque reports whether the color is a visible sprite pixel.
func (c Color) Opaque() bool {
	return c != ColorNone
}

// ParseColor converts a palette name to a Color.
// Returns ColorNone and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "grey" {
		s = "gray"
	}
	for c, name := range colorNames {
		if name == s {
			return c, true
		}
	}
	return ColorNone, false
}
