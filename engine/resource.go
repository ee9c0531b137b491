package engine

import (
	"time"

	"github.com/lixenwraith/glyph-rain/event"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/status"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// Resource holds world singletons, accessed via World.Resources
type Resource struct {
	Time  *TimeResource
	Rand  *RandResource
	Field *FieldConfig
	Event *EventQueueResource

	// Telemetry
	Status *status.Registry
}

// TimeResource carries the current tick's timing for systems
// Updated by World.Update before any system runs
type TimeResource struct {
	// DeltaTime is the non-negative duration of the current tick
	DeltaTime time.Duration

	// GameTime is the sum of all deltas processed
	GameTime time.Duration

	// FrameNumber counts ticks since world creation
	FrameNumber int64
}

// Seconds returns DeltaTime as float seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// RandResource is the injected randomness for all stochastic decisions
type RandResource struct {
	Source vmath.Source
}

// Float64 draws from the injected source
func (r *RandResource) Float64() float64 {
	return r.Source.Float64()
}

// Range draws uniformly from [lo, hi)
func (r *RandResource) Range(lo, hi float64) float64 {
	return vmath.RandRange(r.Source, lo, hi)
}

// Intn draws an integer in [0, n)
func (r *RandResource) Intn(n int) int {
	return vmath.RandIntn(r.Source, n)
}

// EventQueueResource wraps the outbound lifecycle event queue
type EventQueueResource struct {
	Queue *event.EventQueue
}

// FieldConfig is the tunable spawner and lifecycle configuration
type FieldConfig struct {
	// Field spawner cadence
	SpawnInterval time.Duration

	// Spawn region, each range is [min, max)
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	// Per-trail draws
	MaxLength            int
	LifetimeMin          time.Duration
	LifetimeMax          time.Duration
	RateMin, RateMax     float64 // Glyph emissions per second
	ChurnInterval        time.Duration
	DisableFieldSpawning bool
}

// DefaultFieldConfig returns the stock rain configuration
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		SpawnInterval: parameter.FieldSpawnInterval,
		MinX:          parameter.FieldMinX,
		MaxX:          parameter.FieldMaxX,
		MinY:          parameter.FieldMinY,
		MaxY:          parameter.FieldMaxY,
		MinZ:          parameter.FieldMinZ,
		MaxZ:          parameter.FieldMaxZ,
		MaxLength:     parameter.TrailDefaultMaxLength,
		LifetimeMin:   parameter.FieldLifetimeMin,
		LifetimeMax:   parameter.FieldLifetimeMax,
		RateMin:       parameter.FieldRateMin,
		RateMax:       parameter.FieldRateMax,
		ChurnInterval: parameter.GlyphChurnInterval,
	}
}
