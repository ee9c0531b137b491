package component

import "github.com/lixenwraith/glyph-rain/core"

// GlyphPhase tracks the glyph lifecycle, destroyed glyphs have no component
type GlyphPhase uint8

const (
	GlyphActive GlyphPhase = iota
	GlyphAnimatingOut
)

// GlyphComponent represents one displayed character of a trail
type GlyphComponent struct {
	Char rune

	// Color is the base color, mutated by the color tween
	Color core.Color
	// Brightness is the depth-derived multiplier, constant after creation
	Brightness core.Color
	// Resolved caches Color ⊙ Brightness for renderers
	Resolved core.Color

	Phase GlyphPhase
}

// Resolve recomputes the cached render color
func (g *GlyphComponent) Resolve() {
	g.Resolved = g.Color.Mul(g.Brightness)
}
