// Package camera owns the diagram's view transform and interaction state:
// pan offset, zoom scale, hover, and selection.
//
// All mutation goes through the methods on Camera and State; rendering
// reads the state and never writes it. The scale invariant (always within
// [MinScale, MaxScale]) is enforced on every mutation regardless of input
// magnitude.
package camera

import (
	"github.com/blockscope/blockscope/pkg/viz/layout"
)

// Zoom bounds. Scale is clamped into this range on every mutation.
const (
	MinScale = 0.5
	MaxScale = 2.0

	// ZoomStepSize is the additive zoom increment for stepper controls.
	ZoomStepSize = 0.1
)

// Camera is the pan offset and zoom scale applied uniformly to the
// diagram before drawing: screen = world*Scale + Pan.
type Camera struct {
	Pan   layout.Point
	Scale float64
}

// New returns a camera at the identity transform.
func New() Camera {
	return Camera{Scale: 1.0}
}

// PanBy translates the pan offset. Panning is unbounded.
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}

// ZoomBy applies a multiplicative zoom factor (pinch/wheel gestures).
func (c *Camera) ZoomBy(factor float64) {
	c.Scale = clampScale(c.Scale * factor)
}

// ZoomStep applies an additive zoom step of direction*ZoomStepSize
// (stepper controls). Pass +1 to zoom in, -1 to zoom out.
func (c *Camera) ZoomStep(direction float64) {
	c.Scale = clampScale(c.Scale + direction*ZoomStepSize)
}

// Reset restores the identity transform.
func (c *Camera) Reset() {
	c.Pan = layout.Point{}
	c.Scale = 1.0
}

// ToScreen transforms a world point into screen space.
func (c Camera) ToScreen(p layout.Point) layout.Point {
	return p.Scale(c.Scale).Add(c.Pan)
}

// ScreenRect transforms a world rectangle into screen space.
func (c Camera) ScreenRect(r layout.Rect) layout.Rect {
	tl := c.ToScreen(layout.Point{X: r.X, Y: r.Y})
	return layout.Rect{X: tl.X, Y: tl.Y, W: r.W * c.Scale, H: r.H * c.Scale}
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
