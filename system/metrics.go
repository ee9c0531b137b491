package system

import (
	"sync/atomic"

	"github.com/lixenwraith/glyph-rain/engine"
)

// lifecycleStats caches the metric pointers shared by the lifecycle systems
type lifecycleStats struct {
	trailLive      *atomic.Int64
	trailSpawned   *atomic.Int64
	trailDestroyed *atomic.Int64
	glyphLive      *atomic.Int64
	glyphSpawned   *atomic.Int64
	glyphDestroyed *atomic.Int64
}

func newLifecycleStats(world *engine.World) lifecycleStats {
	ints := world.Resources.Status.Ints
	return lifecycleStats{
		trailLive:      ints.Get("trail.live"),
		trailSpawned:   ints.Get("trail.spawned"),
		trailDestroyed: ints.Get("trail.destroyed"),
		glyphLive:      ints.Get("glyph.live"),
		glyphSpawned:   ints.Get("glyph.spawned"),
		glyphDestroyed: ints.Get("glyph.destroyed"),
	}
}

// syncLive refreshes the live gauges from store sizes
func (st lifecycleStats) syncLive(world *engine.World) {
	st.trailLive.Store(int64(world.Components.Trail.CountEntities()))
	st.glyphLive.Store(int64(world.Components.Glyph.CountEntities()))
}
