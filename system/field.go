package system

import (
	"time"

	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/parameter"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// FieldSystem births trails at random positions on a stochastic clock
// There is no population cap; density follows from spawn rate and lifetimes
type FieldSystem struct {
	world *engine.World
	stats lifecycleStats
}

// NewFieldSystem creates a new field spawner system
func NewFieldSystem(world *engine.World) engine.System {
	return &FieldSystem{
		world: world,
		stats: newLifecycleStats(world),
	}
}

// Name returns system's name
func (s *FieldSystem) Name() string {
	return "field"
}

// Priority returns the system's priority
func (s *FieldSystem) Priority() int {
	return parameter.PriorityField
}

// Update draws once per tick and spawns at most one trail
func (s *FieldSystem) Update() {
	res := s.world.Resources
	cfg := res.Field
	if cfg.DisableFieldSpawning {
		return
	}

	if !vmath.Occurs(res.Rand.Source, cfg.SpawnInterval.Seconds(), res.Time.DeltaTime.Seconds()) {
		return
	}

	pos := vmath.Vec3F{
		X: res.Rand.Range(cfg.MinX, cfg.MaxX),
		Y: res.Rand.Range(cfg.MinY, cfg.MaxY),
		Z: res.Rand.Range(cfg.MinZ, cfg.MaxZ),
	}
	lifetime := res.Rand.Range(cfg.LifetimeMin.Seconds(), cfg.LifetimeMax.Seconds())
	rate := res.Rand.Range(cfg.RateMin, cfg.RateMax)

	CreateTrail(s.world, pos, TrailSpec{
		MaxLength:     cfg.MaxLength,
		Lifetime:      time.Duration(lifetime * float64(time.Second)),
		SpawnInterval: time.Duration(float64(time.Second) / rate),
	})
	s.stats.syncLive(s.world)
}
