package system

import "github.com/lixenwraith/glyph-rain/engine"

// Register adds the full rain pipeline to world in tick order
func Register(world *engine.World) {
	world.AddSystem(NewAnimatorSystem(world))
	world.AddSystem(NewDespawnSystem(world))
	world.AddSystem(NewGlyphSystem(world))
	world.AddSystem(NewTrailSystem(world))
	world.AddSystem(NewFieldSystem(world))
}
