package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventTrailSpawned signals a new trail entered the field
	// Trigger: FieldSystem | Payload: *TrailPayload
	EventTrailSpawned EventType = iota + 1

	// EventTrailDestroyed signals a drained trail with no glyphs left was removed
	// Trigger: DespawnSystem | Payload: *TrailPayload
	EventTrailDestroyed

	// EventGlyphSpawned signals a trail emitted a glyph
	// Trigger: TrailSystem | Payload: *GlyphPayload
	EventGlyphSpawned

	// EventGlyphDestroyed signals a glyph finished shrinking and was removed
	// Trigger: DespawnSystem | Payload: *GlyphPayload
	EventGlyphDestroyed
)

func (t EventType) String() string {
	switch t {
	case EventTrailSpawned:
		return "trail.spawned"
	case EventTrailDestroyed:
		return "trail.destroyed"
	case EventGlyphSpawned:
		return "glyph.spawned"
	case EventGlyphDestroyed:
		return "glyph.destroyed"
	default:
		return "unknown"
	}
}

// GameEvent is one queued event stamped with the frame that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
