package main

import (
	"log"
	"time"

	"github.com/lixenwraith/glyph-rain/audio"
	"github.com/lixenwraith/glyph-rain/config"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/event"
	"github.com/lixenwraith/glyph-rain/system"
	"github.com/lixenwraith/glyph-rain/vmath"
)

// newWorld builds a fully registered world from cfg
func newWorld(cfg *config.Config) *engine.World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("world seed %d", seed)

	world := engine.NewWorld(vmath.NewFastRand(seed))
	*world.Resources.Field = cfg.EngineField()
	system.Register(world)
	return world
}

// eventCounts tallies lifecycle events drained from the world queue
type eventCounts map[event.EventType]int

// drainEvents consumes pending lifecycle events, feeding sound and logs
// sound may be nil
func drainEvents(world *engine.World, sound *audio.SoundManager, counts eventCounts) {
	for _, ev := range world.Resources.Event.Queue.Consume() {
		if counts != nil {
			counts[ev.Type]++
		}

		switch p := ev.Payload.(type) {
		case *event.TrailPayload:
			if ev.Type == event.EventTrailSpawned {
				if sound != nil {
					sound.PlayDrop(p.DepthScale)
				}
				log.Printf("frame %d: %s e=%d pos=(%.2f, %.2f, %.2f) depth=%.2f",
					ev.Frame, ev.Type, p.Entity, p.Position.X, p.Position.Y, p.Position.Z, p.DepthScale)
			} else {
				if sound != nil {
					sound.PlayFade()
				}
				log.Printf("frame %d: %s e=%d emitted=%d", ev.Frame, ev.Type, p.Entity, p.Emitted)
			}
		}
	}
}
