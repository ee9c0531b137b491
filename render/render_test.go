package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/core"
	"github.com/lixenwraith/glyph-rain/engine"
	"github.com/lixenwraith/glyph-rain/system"
	"github.com/lixenwraith/glyph-rain/vmath"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestRenderBuffer_SetAndClear(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	buf.SetFg(1, 1, 'x', RGB{255, 0, 0})
	buf.SetFg(9, 9, 'y', RGB{255, 0, 0}) // Out of bounds ignored

	assert.Equal(t, 'x', buf.Get(1, 1).Rune)
	assert.Equal(t, ' ', buf.Get(0, 0).Rune)

	buf.Clear()
	assert.Equal(t, ' ', buf.Get(1, 1).Rune)
}

func TestRenderBuffer_BrighterGlyphWins(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetFg(0, 0, 'a', RGB{0, 200, 0})
	buf.SetFg(0, 0, 'b', RGB{0, 50, 0})
	assert.Equal(t, 'a', buf.Get(0, 0).Rune)

	buf.SetFg(0, 0, 'c', RGB{255, 255, 255})
	assert.Equal(t, 'c', buf.Get(0, 0).Rune)
}

func TestRenderBuffer_Resize(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.Resize(10, 3)
	w, h := buf.Bounds()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
	buf.SetFg(9, 2, 'z', RGB{1, 1, 1})
	assert.Equal(t, 'z', buf.Get(9, 2).Rune)
}

func TestRGB_Conversions(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, FromColor(core.ColorWhite))
	// Alpha premultiplies toward black
	assert.Equal(t, RGB{0, 0, 0}, FromColor(core.Color{R: 1, G: 1, B: 1, A: 0}))
	assert.Equal(t, 16, RGB{0, 0, 0}.Cube256())
	assert.Equal(t, 231, RGB{255, 255, 255}.Cube256())
	assert.Equal(t, tcell.PaletteColor(46), RGB{0, 255, 0}.Tcell(ColorMode256))
}

func TestCamera_ProjectCentersOrigin(t *testing.T) {
	cam := NewCamera(60)
	cam.SetViewport(80, 32)
	assert.InDelta(t, 2.0, cam.Zoom(), 1e-9)

	x, y, ok := cam.Project(vmath.Vec3F{})
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 16, y)

	// One unit up is two rows up, one unit right is four columns right
	x, y, _ = cam.Project(vmath.Vec3F{X: 1, Y: 1})
	assert.Equal(t, 44, x)
	assert.Equal(t, 14, y)

	_, _, ok = cam.Project(vmath.Vec3F{Y: 100})
	assert.False(t, ok)
}

func TestCamera_ZoomSpringsToNewViewport(t *testing.T) {
	cam := NewCamera(60)
	cam.SetViewport(80, 16)
	require.InDelta(t, 1.0, cam.Zoom(), 1e-9)

	cam.SetViewport(80, 32)
	assert.InDelta(t, 1.0, cam.Zoom(), 1e-9, "resize does not snap")

	cam.Update()
	assert.Greater(t, cam.Zoom(), 1.0)
	for i := 0; i < 600; i++ {
		cam.Update()
	}
	assert.InDelta(t, 2.0, cam.Zoom(), 1e-3)
}

func TestOrchestrator_RendersRainAndOverlay(t *testing.T) {
	screen := newSimScreen(t, 40, 16)
	world := engine.NewTestWorld(vmath.ConstSource(0.9999))
	system.Register(world)
	system.CreateTrail(world, vmath.Vec3F{}, system.TrailSpec{MaxLength: 3, Lifetime: time.Hour, SpawnInterval: time.Millisecond})
	world.Update(time.Millisecond)

	cam := NewCamera(60)
	cam.SetViewport(40, 16)

	orch := NewRenderOrchestrator(screen, ColorModeTrue)
	overlay := NewDebugOverlay(world.Resources.Status)
	orch.Register(overlay, PriorityDebug)
	orch.Register(NewRainRenderer(world, cam), PriorityRain)

	ctx := RenderContext{Width: 40, Height: 16, FrameNumber: world.FrameNumber()}
	orch.RenderFrame(ctx, world)

	// One millisecond of drift moves the glyph just left of and above center
	cell := orch.Buffer().Get(19, 7)
	assert.Equal(t, 'Y', cell.Rune)
	r, _, _, _ := screen.GetContent(19, 7)
	assert.Equal(t, 'Y', r)

	// Overlay hidden until toggled
	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, ' ', r)

	require.True(t, overlay.Toggle())
	orch.RenderFrame(ctx, world)
	r, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'f', r)
}

func TestRainRenderer_ShrinkingGlyphDims(t *testing.T) {
	world := engine.NewTestWorld(vmath.ConstSource(0.9999))
	system.Register(world)
	trail := system.CreateTrail(world, vmath.Vec3F{}, system.TrailSpec{MaxLength: 1, Lifetime: 0, SpawnInterval: time.Millisecond})
	world.Update(time.Millisecond)
	world.Update(time.Millisecond)       // Shrink starts
	world.Update(300 * time.Millisecond) // Fade ~0.16
	require.Equal(t, 1, world.ChildCount(trail))

	cam := NewCamera(60)
	cam.SetViewport(40, 16)
	buf := NewRenderBuffer(40, 16)
	NewRainRenderer(world, cam).Render(RenderContext{}, buf)

	found := false
	for y := 0; y < 16; y++ {
		for x := 0; x < 40; x++ {
			if c := buf.Get(x, y); c.Rune == '·' {
				found = true
				assert.Less(t, c.Fg.Luma(), 100)
			}
		}
	}
	assert.True(t, found)
}
