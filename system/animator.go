package system

import (
	"sync/atomic"

	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/tween"
)

// AnimatorSystem advances every running tween and writes the result into
// the entity's transform scale or glyph color
type AnimatorSystem struct {
	world *engine.World

	statActive *atomic.Int64
}

// NewAnimatorSystem creates a new animator system
func NewAnimatorSystem(world *engine.World) engine.System {
	return &AnimatorSystem{
		world:      world,
		statActive: world.Resources.Status.Ints.Get("tween.active"),
	}
}

// Name returns system's name
func (s *AnimatorSystem) Name() string {
	return "animator"
}

// Priority returns the system's priority
func (s *AnimatorSystem) Priority() int {
	return parameter.PriorityAnimator
}

// Update advances tweens by the tick delta
// Finished scale tweens stay attached for the despawn pass, finished color tweens are dropped
func (s *AnimatorSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	store := s.world.Components.Animator

	var active int64
	for _, entity := range store.GetAllEntities() {
		anim, ok := store.GetComponent(entity)
		if !ok || anim.Empty() {
			continue
		}

		if anim.Scale != nil {
			if transform, ok := s.world.Components.Transform.GetComponent(entity); ok {
				anim.Scale.Advance(dt, tween.Target{Scale: &transform.Scale})
				s.world.Components.Transform.SetComponent(entity, transform)
			}
			if !anim.Scale.Finished() {
				active++
			}
		}

		if anim.Color != nil {
			if glyph, ok := s.world.Components.Glyph.GetComponent(entity); ok {
				anim.Color.Advance(dt, tween.Target{Color: &glyph.Color})
				glyph.Resolve()
				s.world.Components.Glyph.SetComponent(entity, glyph)
			}
			if anim.Color.Finished() {
				anim.Color = nil
			} else {
				active++
			}
		}

		store.SetComponent(entity, anim)
	}
	s.statActive.Store(active)
}
