package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	FrameNumber int64
	DeltaTime   time.Duration
	IsPaused    bool
}
