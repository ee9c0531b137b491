package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color stores linear float channels with alpha, 1.0 = full intensity
// Channels may exceed 1.0 transiently; Clamped bounds them for output
type Color struct {
	R, G, B, A float64
}

// Predefined colors
var (
	ColorWhite     = Color{1, 1, 1, 1}
	ColorLimeGreen = Color{0.196, 0.804, 0.196, 1}
)

// Gray returns an opaque multiplier with equal rgb channels
func Gray(level float64) Color {
	return Color{level, level, level, 1}
}

// Mul performs component-wise multiplication including alpha
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale multiplies rgb by factor, alpha untouched (for fading effects)
func (c Color) Scale(factor float64) Color {
	if factor <= 0 {
		return Color{0, 0, 0, c.A}
	}
	return Color{c.R * factor, c.G * factor, c.B * factor, c.A}
}

// Lerp returns c*(1-t) + o*t per channel
func (c Color) Lerp(o Color, t float64) Color {
	rgb := c.colorful().BlendRgb(o.colorful(), t)
	return Color{
		R: rgb.R,
		G: rgb.G,
		B: rgb.B,
		A: c.A*(1-t) + o.A*t,
	}
}

// Clamped bounds every channel to [0, 1]
func (c Color) Clamped() Color {
	rgb := c.colorful().Clamped()
	return Color{rgb.R, rgb.G, rgb.B, clamp01(c.A)}
}

// RGB255 returns premultiplied 8-bit channels for terminal output
// Alpha darkens toward black since cells have no transparency
func (c Color) RGB255() (r, g, b uint8) {
	cl := c.Clamped()
	return colorful.Color{R: cl.R * cl.A, G: cl.G * cl.A, B: cl.B * cl.A}.RGB255()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
