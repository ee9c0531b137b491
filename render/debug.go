package render

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/glyph-rain/status"
)

// DebugOverlay prints the metric registry in the top-left corner
type DebugOverlay struct {
	registry *status.Registry
	visible  atomic.Bool
}

// NewDebugOverlay creates a hidden overlay
func NewDebugOverlay(registry *status.Registry) *DebugOverlay {
	return &DebugOverlay{registry: registry}
}

// Toggle flips visibility and returns the new state
func (d *DebugOverlay) Toggle() bool {
	v := !d.visible.Load()
	d.visible.Store(v)
	return v
}

// IsVisible implements VisibilityToggle
func (d *DebugOverlay) IsVisible() bool {
	return d.visible.Load()
}

// Render draws one metric per line with a header
func (d *DebugOverlay) Render(ctx RenderContext, buf *RenderBuffer) {
	header := fmt.Sprintf(" frame %d ", ctx.FrameNumber)
	if ctx.IsPaused {
		header += "[paused] "
	}
	buf.SetString(0, 0, header, RgbOverlayFg, RgbOverlayBg)

	for i, line := range d.registry.Lines() {
		buf.SetString(0, i+1, " "+line+" ", RgbOverlayFg, RgbOverlayBg)
	}
}
