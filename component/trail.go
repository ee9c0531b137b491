package component

import (
	"time"

	"github.com/lixenwraith/glyph-rain/core"
)

// TrailComponent is one falling streak that emits glyphs on a fixed interval
type TrailComponent struct {
	SpawnCount int
	MaxLength  int

	// DepthScale is 10^(depth/10), fixed at creation
	DepthScale float64

	// GlyphLifetime is the decay duration handed to each glyph, already divided by DepthScale
	GlyphLifetime time.Duration

	// Repeating emission timer
	SpawnInterval time.Duration
	SpawnElapsed  time.Duration

	// LastSpawned is a weak reference to the head glyph (0 = none)
	// Validate with World.IsAlive before use
	LastSpawned core.Entity

	// Spawning is cleared once MaxLength is reached (Draining)
	Spawning bool
}

// TrailPhase names the trail lifecycle state
type TrailPhase uint8

const (
	TrailSpawning TrailPhase = iota
	TrailDraining
)

// Phase derives the lifecycle state from the spawning flag
func (t TrailComponent) Phase() TrailPhase {
	if t.Spawning {
		return TrailSpawning
	}
	return TrailDraining
}
