package render

import (
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/system"
)

// Glyph cells below these fades are drawn as a dot or skipped
const (
	fadeDotThreshold  = 0.35
	fadeSkipThreshold = 0.05
)

// RainRenderer draws every live glyph back to front
type RainRenderer struct {
	world  *engine.World
	camera *Camera
}

// NewRainRenderer creates a renderer projecting through camera
func NewRainRenderer(world *engine.World, camera *Camera) *RainRenderer {
	return &RainRenderer{world: world, camera: camera}
}

// Render projects glyphs and scales their color by the shrink fade
func (r *RainRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, g := range system.Glyphs(r.world) {
		if g.Fade < fadeSkipThreshold {
			continue
		}
		x, y, ok := r.camera.Project(g.Position)
		if !ok {
			continue
		}

		ch := g.Char
		if g.Fade < fadeDotThreshold {
			ch = '·'
		}
		buf.SetFg(x, y, ch, FromColor(g.Color.Scale(g.Fade)))
	}
}
