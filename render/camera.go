package render

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/glyph-rain/vmath"
)

// Camera defaults
const (
	// CameraViewHeight is the vertical extent in world units, centered at the origin
	CameraViewHeight = 16.0
	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	cameraSpringFrequency = 6.0
	cameraSpringDamping   = 1.0
)

// Camera is an orthographic projection from world units to terminal cells
// Zoom follows the viewport height through a critically damped spring
type Camera struct {
	width, height int

	zoom    float64 // Rows per world unit
	zoomVel float64
	target  float64
	spring  harmonica.Spring
	settled bool
}

// NewCamera creates a camera whose spring steps at fps
func NewCamera(fps int) *Camera {
	return &Camera{
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), cameraSpringFrequency, cameraSpringDamping),
	}
}

// SetViewport retargets zoom for a new terminal size; the first call snaps
func (c *Camera) SetViewport(width, height int) {
	c.width, c.height = width, height
	c.target = float64(height) / CameraViewHeight
	if !c.settled {
		c.zoom = c.target
		c.settled = true
	}
}

// Update steps the zoom spring one frame
func (c *Camera) Update() {
	c.zoom, c.zoomVel = c.spring.Update(c.zoom, c.zoomVel, c.target)
}

// Zoom returns the current rows per world unit
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Project maps a world position to a cell; ok is false off screen
// World y points up, screen rows grow down
func (c *Camera) Project(p vmath.Vec3F) (x, y int, ok bool) {
	fx := float64(c.width)/2 + p.X*c.zoom*CellAspect
	fy := float64(c.height)/2 - p.Y*c.zoom
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	ok = x >= 0 && x < c.width && y >= 0 && y < c.height
	return x, y, ok
}
