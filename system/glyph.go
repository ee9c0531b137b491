package system

import (
	"sync/atomic"

	"github.com/lixenwraith/glyph-rain/component"
	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/tween"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// GlyphSystem re-rolls glyph characters and counts down decay
// Decay expiry starts the shrink-out tween exactly once
type GlyphSystem struct {
	world *engine.World

	statChurned *atomic.Int64
	statDecayed *atomic.Int64
}

// NewGlyphSystem creates a new glyph system
func NewGlyphSystem(world *engine.World) engine.System {
	return &GlyphSystem{
		world:       world,
		statChurned: world.Resources.Status.Ints.Get("glyph.churned"),
		statDecayed: world.Resources.Status.Ints.Get("glyph.decayed"),
	}
}

// Name returns system's name
func (s *GlyphSystem) Name() string {
	return "glyph"
}

// Priority returns the system's priority
func (s *GlyphSystem) Priority() int {
	return parameter.PriorityGlyph
}

// Update processes churn then decay for every live glyph
func (s *GlyphSystem) Update() {
	res := s.world.Resources
	dt := res.Time.DeltaTime
	churn := res.Field.ChurnInterval.Seconds()

	for _, entity := range s.world.Components.Glyph.GetAllEntities() {
		glyph, ok := s.world.Components.Glyph.GetComponent(entity)
		if !ok {
			continue
		}

		// Churn runs in every phase until destruction
		if vmath.Occurs(res.Rand.Source, churn, dt.Seconds()) {
			glyph.Char = RandomGlyph(res.Rand)
			s.world.Components.Glyph.SetComponent(entity, glyph)
			s.statChurned.Add(1)
		}

		// Zero-length ticks never advance the countdown, even for an expired lifetime
		if dt <= 0 {
			continue
		}
		decay, ok := s.world.Components.Decay.GetComponent(entity)
		if !ok || decay.Triggered {
			continue
		}
		decay.Remaining -= dt
		if decay.Remaining > 0 {
			s.world.Components.Decay.SetComponent(entity, decay)
			continue
		}

		decay.Triggered = true
		s.world.Components.Decay.SetComponent(entity, decay)
		s.startShrink(entity, glyph)
	}
}

// startShrink moves the glyph to AnimatingOut and attaches the scale tween
func (s *GlyphSystem) startShrink(entity core.Entity, glyph component.GlyphComponent) {
	glyph.Phase = component.GlyphAnimatingOut
	s.world.Components.Glyph.SetComponent(entity, glyph)

	scale := s.world.Transform(entity).Scale
	anim, _ := s.world.Components.Animator.GetComponent(entity)
	anim.Scale = tween.New(
		tween.ScaleLens(scale, vmath.Vec3F{X: 0, Y: 0, Z: scale.Z}),
		vmath.EaseQuadOut,
		parameter.GlyphShrinkDuration,
	)
	s.world.Components.Animator.SetComponent(entity, anim)
	s.statDecayed.Add(1)
}

// RandomGlyph draws one symbol uniformly from the glyph alphabet
func RandomGlyph(r *engine.RandResource) rune {
	return parameter.GlyphAlphabet[r.Intn(len(parameter.GlyphAlphabet))]
}
