package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/event"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	dts      *[]time.Duration
	world    *World
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update() {
	*s.log = append(*s.log, s.name)
	if s.dts != nil {
		*s.dts = append(*s.dts, s.world.Resources.Time.DeltaTime)
	}
}

func TestWorld_SystemsRunInPriorityOrder(t *testing.T) {
	w := NewTestWorld(nil)
	var log []string

	w.AddSystem(&recordingSystem{name: "field", priority: 50, log: &log})
	w.AddSystem(&recordingSystem{name: "animator", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "trail", priority: 40, log: &log})
	w.AddSystem(&recordingSystem{name: "despawn", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "glyph", priority: 30, log: &log})

	w.Update(16 * time.Millisecond)
	assert.Equal(t, []string{"animator", "despawn", "glyph", "trail", "field"}, log)
}

func TestWorld_NegativeDeltaClampedToZero(t *testing.T) {
	w := NewTestWorld(nil)
	var log []string
	var dts []time.Duration
	w.AddSystem(&recordingSystem{name: "s", log: &log, dts: &dts, world: w})

	w.Update(-time.Second)
	w.Update(time.Second)

	require.Len(t, dts, 2)
	assert.Zero(t, dts[0])
	assert.Equal(t, time.Second, dts[1])
	assert.Equal(t, time.Second, w.Resources.Time.GameTime)
	assert.EqualValues(t, 2, w.FrameNumber())
}

func TestWorld_EntityLifecycle(t *testing.T) {
	w := NewTestWorld(nil)
	a := w.CreateEntity()
	b := w.CreateEntity()

	assert.NotEqual(t, a, b)
	assert.True(t, w.IsAlive(a))
	assert.Equal(t, 2, w.EntityCount())

	w.DestroyRecursive(a)
	assert.False(t, w.IsAlive(a))

	c := w.CreateEntity()
	assert.NotEqual(t, a, c, "ids are not reused")

	w.Clear()
	assert.Zero(t, w.EntityCount())
}

func TestWorld_PushEventStampsFrame(t *testing.T) {
	w := NewTestWorld(nil)
	w.Update(0)
	w.Update(0)

	w.PushEvent(event.EventTrailSpawned, nil)
	events := w.Resources.Event.Queue.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventTrailSpawned, events[0].Type)
	assert.EqualValues(t, 2, events[0].Frame)
}
