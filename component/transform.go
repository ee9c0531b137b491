package component

import "github.com/lixenwraith/glyph-rain/vmath"

// TransformComponent is an entity's position and scale relative to its parent
// Root entities are in world space
type TransformComponent struct {
	Position vmath.Vec3F
	Scale    vmath.Vec3F
}
