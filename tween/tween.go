// Package tween drives one-shot interpolations of a single entity attribute
// Lenses are a closed set of tagged variants dispatched by one driver
package tween

import (
	"time"

	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// FinishThreshold is the progress at which a tween reports completion
// Slightly below 1 so per-tick rounding never delays detection by a frame
const FinishThreshold = 0.999

// LensKind selects which attribute a lens writes
type LensKind uint8

const (
	LensNone LensKind = iota
	LensScale
	LensColor
)

func (k LensKind) String() string {
	switch k {
	case LensScale:
		return "scale"
	case LensColor:
		return "color"
	default:
		return "none"
	}
}

// Lens maps an eased ratio onto one target attribute
// Only the fields matching Kind are meaningful
type Lens struct {
	Kind LensKind

	StartScale, EndScale vmath.Vec3F
	StartColor, EndColor core.Color
}

// ScaleLens interpolates a transform scale
func ScaleLens(start, end vmath.Vec3F) Lens {
	return Lens{Kind: LensScale, StartScale: start, EndScale: end}
}

// ColorLens interpolates a base color including alpha
func ColorLens(start, end core.Color) Lens {
	return Lens{Kind: LensColor, StartColor: start, EndColor: end}
}

// Target exposes the writable attributes of one entity
// Nil fields are skipped, so a lens on a missing attribute is a no-op
type Target struct {
	Scale *vmath.Vec3F
	Color *core.Color
}

// Apply writes start*(1-ratio) + end*ratio into the matching target field
// Returns false when the target lacks the attribute
func (l Lens) Apply(target Target, ratio float64) bool {
	switch l.Kind {
	case LensScale:
		if target.Scale == nil {
			return false
		}
		*target.Scale = vmath.V3FLerp(l.StartScale, l.EndScale, ratio)
		return true
	case LensColor:
		if target.Color == nil {
			return false
		}
		*target.Color = l.StartColor.Lerp(l.EndColor, ratio)
		return true
	}
	return false
}

// Tween advances a normalized progress clock over a fixed duration
type Tween struct {
	Lens     Lens
	Ease     vmath.Ease
	Elapsed  time.Duration
	Duration time.Duration
}

// New creates a tween at zero progress
func New(lens Lens, ease vmath.Ease, duration time.Duration) *Tween {
	return &Tween{
		Lens:     lens,
		Ease:     ease,
		Duration: duration,
	}
}

// Progress returns the uneased ratio clamped to [0,1]
// A non-positive duration is complete from the start
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(t.Elapsed) / float64(t.Duration))
}

// Finished reports progress at or past FinishThreshold, a terminal state
func (t *Tween) Finished() bool {
	return t.Progress() >= FinishThreshold
}

// Advance accumulates dt, applies the eased ratio through the lens and
// returns the uneased progress
// Negative dt is ignored and a finished tween no longer accumulates
func (t *Tween) Advance(dt time.Duration, target Target) float64 {
	if dt > 0 && !t.Finished() {
		t.Elapsed += dt
		if t.Elapsed > t.Duration {
			t.Elapsed = t.Duration
		}
	}
	p := t.Progress()
	t.Lens.Apply(target, t.Ease.Apply(p))
	return p
}
