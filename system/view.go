package system

import (
	"sort"

	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// GlyphView is the render-ready snapshot of one glyph in world space
type GlyphView struct {
	Entity   core.Entity
	Char     rune
	Color    core.Color
	Position vmath.Vec3F
	Scale    vmath.Vec3F

	// Fade is the glyph's own vertical scale, 1 until the shrink-out starts
	Fade float64
}

// Glyphs returns every live glyph ordered back to front (ascending z)
// Call inside World.RunSafe when the simulation runs on another goroutine
func Glyphs(world *engine.World) []GlyphView {
	entities := world.Components.Glyph.GetAllEntities()
	views := make([]GlyphView, 0, len(entities))

	for _, entity := range entities {
		glyph, ok := world.Components.Glyph.GetComponent(entity)
		if !ok {
			continue
		}
		wt := world.WorldTransform(entity)
		views = append(views, GlyphView{
			Entity:   entity,
			Char:     glyph.Char,
			Color:    glyph.Resolved,
			Position: wt.Position,
			Scale:    wt.Scale,
			Fade:     world.Transform(entity).Scale.Y,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Position.Z != views[j].Position.Z {
			return views[i].Position.Z < views[j].Position.Z
		}
		return views[i].Entity < views[j].Entity
	})
	return views
}
