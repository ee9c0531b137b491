package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default rendering and simulation interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta bounds a single tick after stalls (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// HierarchyMaxDepth guards world transform composition against cycles
	HierarchyMaxDepth = 64
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)
