package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// quietDraw never fires a churn or spawn roll at the tick sizes used in tests
const quietDraw = vmath.ConstSource(0.9999)

func newRainWorld(src vmath.Source) *engine.World {
	w := engine.NewTestWorld(src)
	Register(w)
	return w
}

func tickN(w *engine.World, n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		w.Update(dt)
	}
}

func trailOf(w *engine.World, e core.Entity) (spawnCount int, spawning bool) {
	tc, ok := w.Components.Trail.GetComponent(e)
	if !ok {
		return -1, false
	}
	return tc.SpawnCount, tc.Spawning
}

func assertColorNear(t *testing.T, want, got core.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-9)
	assert.InDelta(t, want.G, got.G, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)
	assert.InDelta(t, want.A, got.A, 1e-9)
}
