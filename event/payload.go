package event

import (
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// TrailPayload describes a trail at birth or removal
type TrailPayload struct {
	Entity     core.Entity
	Position   vmath.Vec3F
	DepthScale float64
	Emitted    int
}

// GlyphPayload describes a glyph and its owning trail
type GlyphPayload struct {
	Entity core.Entity
	Trail  core.Entity
	Char   rune
}
