package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-rain/core"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RgbBackground = RGB{0, 0, 0}
	RgbOverlayFg  = RGB{200, 230, 200}
	RgbOverlayBg  = RGB{10, 30, 10}
)

// ColorMode selects how RGB is emitted to the terminal
type ColorMode uint8

const (
	ColorModeTrue ColorMode = iota
	ColorMode256
)

// FromColor converts a linear glyph color to premultiplied 8-bit channels
func FromColor(c core.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// Luma approximates perceived brightness in [0, 255]
func (c RGB) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// Cube256 maps to the nearest entry of the xterm 6x6x6 color cube
func (c RGB) Cube256() int {
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}

// Tcell converts for output in the given mode
func (c RGB) Tcell(mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(c.Cube256())
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
