package system

import (
	"github.com/lixenwraith/glyph-rain/component"
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/event"
	"github.com/lixenwraith/glyph-rain/parameter"
)

// DespawnSystem destroys glyphs whose shrink animation has finished and
// trails that stopped spawning and own no glyphs
// It runs after the animator so completion is observed in the same tick
type DespawnSystem struct {
	world *engine.World
	stats lifecycleStats
}

// NewDespawnSystem creates a new despawn system
func NewDespawnSystem(world *engine.World) engine.System {
	return &DespawnSystem{
		world: world,
		stats: newLifecycleStats(world),
	}
}

// Name returns system's name
func (s *DespawnSystem) Name() string {
	return "despawn"
}

// Priority returns the system's priority
func (s *DespawnSystem) Priority() int {
	return parameter.PriorityDespawn
}

// Update runs glyph removal before the trail check so a trail emptied this tick is destroyed in it
func (s *DespawnSystem) Update() {
	for _, entity := range s.world.Components.Animator.GetAllEntities() {
		anim, ok := s.world.Components.Animator.GetComponent(entity)
		if !ok || anim.Scale == nil || !anim.Scale.Finished() {
			continue
		}
		s.destroyGlyph(entity)
	}

	for _, entity := range s.world.Components.Trail.GetAllEntities() {
		trail, ok := s.world.Components.Trail.GetComponent(entity)
		if !ok || trail.Phase() != component.TrailDraining {
			continue
		}
		if s.world.ChildCount(entity) > 0 {
			continue
		}
		s.destroyTrail(entity, trail)
	}

	s.stats.syncLive(s.world)
}

func (s *DespawnSystem) destroyGlyph(entity core.Entity) {
	parent := s.world.Parent(entity)
	if glyph, ok := s.world.Components.Glyph.GetComponent(entity); ok {
		s.world.PushEvent(event.EventGlyphDestroyed, &event.GlyphPayload{
			Entity: entity,
			Trail:  parent,
			Char:   glyph.Char,
		})
		s.stats.glyphDestroyed.Add(1)
	}

	// Detach first so the owner never lists a dead child
	s.world.DetachChild(entity)
	s.world.DestroyRecursive(entity)
}

func (s *DespawnSystem) destroyTrail(entity core.Entity, trail component.TrailComponent) {
	s.world.PushEvent(event.EventTrailDestroyed, &event.TrailPayload{
		Entity:     entity,
		Position:   s.world.Transform(entity).Position,
		DepthScale: trail.DepthScale,
		Emitted:    trail.SpawnCount,
	})
	s.stats.trailDestroyed.Add(1)
	s.world.DestroyRecursive(entity)
}
