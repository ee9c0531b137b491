package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/event"
	"github.com/lixenwraith/glyph-rain/status"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Resources  Resource
	Components ComponentStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world drawing randomness from src
// A nil src falls back to a fixed-seed FastRand
func NewWorld(src vmath.Source) *World {
	if src == nil {
		src = vmath.NewFastRand(1)
	}
	field := DefaultFieldConfig()

	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Resources: Resource{
			Time:   &TimeResource{},
			Rand:   &RandResource{Source: src},
			Field:  &field,
			Event:  &EventQueueResource{Queue: event.NewEventQueue()},
			Status: status.NewRegistry(),
		},
		Components: newComponentStore(),
		systems:    make([]System, 0),
	}
}

// CreateEntity reserves a new live entity ID, IDs are never reused
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// IsAlive reports whether e was created and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	if e == 0 {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// destroyEntity removes e from every store and the live set
// Hierarchy edges are the caller's concern, see DestroyRecursive
func (w *World) destroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.RemoveEntity(e)
	}
	w.mu.Lock()
	delete(w.alive, e)
	w.mu.Unlock()
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
// Renderers use it to read a consistent frame
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update advances the simulation by dt, negative dt is treated as zero
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	tr := w.Resources.Time
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber++

	w.Resources.Status.Floats.Get("frame.dt_ms").Set(float64(dt) / float64(time.Millisecond))

	for _, system := range w.Systems() {
		system.Update()
	}
}

// FrameNumber returns the current tick index
func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent emits a lifecycle event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}
