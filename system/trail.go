package system

import (
	"time"

	"github.com/lixenwraith/glyph-rain/component"
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/event"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/tween"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// TrailSpec holds the per-trail parameters chosen at birth
// Zero fields fall back to trail defaults
type TrailSpec struct {
	MaxLength     int
	Lifetime      time.Duration // Requested glyph lifetime before depth scaling
	SpawnInterval time.Duration
}

// CreateTrail spawns a trail entity at pos; pos.Z sets its depth
func CreateTrail(world *engine.World, pos vmath.Vec3F, spec TrailSpec) core.Entity {
	if spec.MaxLength <= 0 {
		spec.MaxLength = parameter.TrailDefaultMaxLength
	}
	if spec.SpawnInterval <= 0 {
		spec.SpawnInterval = parameter.TrailDefaultSpawnInterval
	}
	if spec.Lifetime < 0 {
		spec.Lifetime = 0
	}

	depthScale := vmath.DepthScale(pos.Z)
	entity := world.CreateEntity()

	world.Components.Transform.SetComponent(entity, component.TransformComponent{
		Position: pos,
		Scale:    vmath.Vec3F{X: depthScale, Y: depthScale, Z: 1},
	})
	world.Components.Trail.SetComponent(entity, component.TrailComponent{
		MaxLength:     spec.MaxLength,
		DepthScale:    depthScale,
		GlyphLifetime: time.Duration(float64(spec.Lifetime) / depthScale),
		SpawnInterval: spec.SpawnInterval,
		Spawning:      true,
	})

	world.PushEvent(event.EventTrailSpawned, &event.TrailPayload{
		Entity:     entity,
		Position:   pos,
		DepthScale: depthScale,
	})
	world.Resources.Status.Ints.Get("trail.spawned").Add(1)
	world.Resources.Status.Ints.Get("trail.live").Store(int64(world.Components.Trail.CountEntities()))

	return entity
}

// TrailSystem drifts trails and emits glyphs on each trail's fixed timer
type TrailSystem struct {
	world *engine.World
	stats lifecycleStats
}

// NewTrailSystem creates a new trail system
func NewTrailSystem(world *engine.World) engine.System {
	return &TrailSystem{
		world: world,
		stats: newLifecycleStats(world),
	}
}

// Name returns system's name
func (s *TrailSystem) Name() string {
	return "trail"
}

// Priority returns the system's priority
func (s *TrailSystem) Priority() int {
	return parameter.PriorityTrail
}

// Update applies drift and the spawn timer to every trail
func (s *TrailSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime

	for _, entity := range s.world.Components.Trail.GetAllEntities() {
		trail, ok := s.world.Components.Trail.GetComponent(entity)
		if !ok {
			continue
		}

		s.drift(entity, trail.DepthScale, dt.Seconds())

		if !trail.Spawning {
			continue
		}

		trail.SpawnElapsed += dt
		if trail.SpawnElapsed >= trail.SpawnInterval {
			// At most one emission per tick; the remainder carries over
			trail.SpawnElapsed %= trail.SpawnInterval
			s.emit(entity, &trail)
		}

		if trail.SpawnCount >= trail.MaxLength {
			trail.Spawning = false
			trail.SpawnElapsed = 0
		}
		s.world.Components.Trail.SetComponent(entity, trail)
	}

	s.stats.syncLive(s.world)
}

// drift moves nearer trails faster
func (s *TrailSystem) drift(entity core.Entity, depthScale, dt float64) {
	transform, ok := s.world.Components.Transform.GetComponent(entity)
	if !ok || dt <= 0 {
		return
	}
	transform.Position.X -= parameter.TrailDriftX * depthScale * dt
	transform.Position.Y += parameter.TrailDriftY * depthScale * dt
	s.world.Components.Transform.SetComponent(entity, transform)
}

// emit retargets the previous head glyph and appends a new one below it
func (s *TrailSystem) emit(entity core.Entity, trail *component.TrailComponent) {
	if prev := trail.LastSpawned; s.world.IsAlive(prev) && s.world.Components.Glyph.HasEntity(prev) {
		anim, _ := s.world.Components.Animator.GetComponent(prev)
		anim.Color = tween.New(
			tween.ColorLens(core.ColorWhite, core.ColorLimeGreen),
			vmath.EaseQuadOut,
			parameter.GlyphHeadFadeDuration,
		)
		s.world.Components.Animator.SetComponent(prev, anim)
	}

	glyph := s.world.CreateEntity()
	s.world.Components.Transform.SetComponent(glyph, component.TransformComponent{
		Position: vmath.Vec3F{X: 0, Y: -float64(trail.SpawnCount), Z: 0},
		Scale:    vmath.V3FOne,
	})

	gc := component.GlyphComponent{
		Char:       RandomGlyph(s.world.Resources.Rand),
		Color:      core.ColorWhite,
		Brightness: core.Gray(vmath.Clamp01(trail.DepthScale)),
		Phase:      component.GlyphActive,
	}
	gc.Resolve()
	s.world.Components.Glyph.SetComponent(glyph, gc)
	s.world.Components.Decay.SetComponent(glyph, component.DecayComponent{Remaining: trail.GlyphLifetime})
	s.world.Components.Animator.SetComponent(glyph, component.AnimatorComponent{})

	s.world.AttachChild(entity, glyph)
	trail.SpawnCount++
	trail.LastSpawned = glyph

	s.world.PushEvent(event.EventGlyphSpawned, &event.GlyphPayload{
		Entity: glyph,
		Trail:  entity,
		Char:   gc.Char,
	})
	s.stats.glyphSpawned.Add(1)
}
