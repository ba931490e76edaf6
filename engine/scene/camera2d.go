// Package scene holds helpers that sit on top of the pipeline, such as a 2D
// camera producing view transforms.
package scene

import "github.com/hubastard/grove/v2/engine/geom"

const minZoom = 0.05

// Camera2D looks at Position with the given rotation and zoom; the point it
// looks at lands in the center of a Viewport-sized target.
type Camera2D struct {
	Position geom.Vec2
	Rotation float32 // radians
	Zoom     float32 // 1 = no zoom
	Viewport geom.Vec2

	view  geom.Transform
	dirty bool
}

func NewCamera2D(width, height float32) *Camera2D {
	c := &Camera2D{Zoom: 1, Viewport: geom.V(width, height)}
	c.Recalculate()
	return c
}

func (c *Camera2D) SetViewport(w, h float32) {
	c.Viewport = geom.V(w, h)
	c.dirty = true
}

func (c *Camera2D) Move(dx, dy float32) {
	c.Position = c.Position.Add(geom.V(dx, dy))
	c.dirty = true
}

func (c *Camera2D) Rotate(dRad float32) {
	c.Rotation += dRad
	c.dirty = true
}

func (c *Camera2D) SetZoom(z float32) {
	c.Zoom = max(z, minZoom)
	c.dirty = true
}

// View maps world coordinates to target coordinates. Pass it to
// Renderer2D.SetTransform before drawing the world.
func (c *Camera2D) View() geom.Transform {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

func (c *Camera2D) Recalculate() {
	c.view = geom.Identity().
		Translate(-c.Position.X, -c.Position.Y).
		Rotate(-c.Rotation).
		Scale(c.Zoom, c.Zoom).
		Translate(c.Viewport.X/2, c.Viewport.Y/2)
	c.dirty = false
}

// ScreenToWorld maps a target point, such as the mouse position, into the world.
func (c *Camera2D) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	inv, _ := c.View().Invert()
	return inv.Apply(p)
}
