package scene

import (
	"time"

	"github.com/hubastard/grove/v2/engine/input"
)

// CameraController2D: WASD move, Q/E rotate, Z/X zoom in/out. Movement is
// in world units per second at zoom 1.
type CameraController2D struct {
	MoveSpeed float32
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per second
	Camera    *Camera2D
}

func NewCameraController2D(cam *Camera2D) *CameraController2D {
	return &CameraController2D{
		MoveSpeed: 300,
		RotSpeed:  2.0,
		ZoomSpeed: 2.0,
		Camera:    cam,
	}
}

func (cc *CameraController2D) Update(kb *input.Keyboard, dt time.Duration) {
	s := float32(dt.Seconds())
	speed := cc.MoveSpeed * s / cc.Camera.Zoom
	cam := cc.Camera

	// IsKeyHold also covers the frame of the press.
	if kb.IsKeyHold(input.KeyW) {
		cam.Move(0, -speed)
	}
	if kb.IsKeyHold(input.KeyS) {
		cam.Move(0, speed)
	}
	if kb.IsKeyHold(input.KeyA) {
		cam.Move(-speed, 0)
	}
	if kb.IsKeyHold(input.KeyD) {
		cam.Move(speed, 0)
	}
	if kb.IsKeyHold(input.KeyQ) {
		cam.Rotate(cc.RotSpeed * s)
	}
	if kb.IsKeyHold(input.KeyE) {
		cam.Rotate(-cc.RotSpeed * s)
	}
	if kb.IsKeyHold(input.KeyZ) {
		cam.SetZoom(cam.Zoom * (1 + (cc.ZoomSpeed-1)*s))
	}
	if kb.IsKeyHold(input.KeyX) {
		cam.SetZoom(cam.Zoom / (1 + (cc.ZoomSpeed-1)*s))
	}
}
