package core

import (
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/input"
)

// Event is delivered to Game.Event after the input state has been updated.
// Positions and sizes are logical.
type Event interface{ isEvent() }

// WindowClose is vetoed by reporting it handled.
type WindowClose struct{}

type WindowResize struct{ Size geom.Vec2 }

type WindowMove struct{ Position geom.Vec2 }

type WindowFocus struct{ Focused bool }

type ReceivedChar struct{ Rune rune }

type KeyboardInput struct {
	Key      input.Key
	Scancode int
	Action   input.Action
	Repeated bool
}

type ModifiersChange struct{ Modifiers input.Modifiers }

type MouseMove struct{ Position geom.Vec2 }

type MouseEnterWindow struct{}

type MouseLeaveWindow struct{}

// MouseWheel delta is in lines.
type MouseWheel struct{ Delta geom.Vec2 }

type MouseInput struct {
	Button   input.MouseButton
	Action   input.Action
	Repeated bool
}

type TouchInput struct {
	ID       uint64
	Phase    input.TouchPhase
	Position geom.Vec2
}

// TouchpadScroll delta is in logical pixels.
type TouchpadScroll struct {
	Delta geom.Vec2
	Phase input.TouchPhase
}

type TouchpadPress struct {
	Pressure float32
	Stage    int64
}

type GamepadConnect struct{ ID input.GamepadID }

type GamepadDisconnect struct{ ID input.GamepadID }

type GamepadButtonInput struct {
	ID       input.GamepadID
	Button   input.GamepadButton
	Action   input.Action
	Repeated bool
}

type GamepadButtonChange struct {
	ID     input.GamepadID
	Button input.GamepadButton
	Value  float32
}

type GamepadAxisChange struct {
	ID    input.GamepadID
	Axis  input.GamepadAxis
	Value float32
}

type AppSuspend struct{}

type AppResume struct{}

func (WindowClose) isEvent()         {}
func (WindowResize) isEvent()        {}
func (WindowMove) isEvent()          {}
func (WindowFocus) isEvent()         {}
func (ReceivedChar) isEvent()        {}
func (KeyboardInput) isEvent()       {}
func (ModifiersChange) isEvent()     {}
func (MouseMove) isEvent()           {}
func (MouseEnterWindow) isEvent()    {}
func (MouseLeaveWindow) isEvent()    {}
func (MouseWheel) isEvent()          {}
func (MouseInput) isEvent()          {}
func (TouchInput) isEvent()          {}
func (TouchpadScroll) isEvent()      {}
func (TouchpadPress) isEvent()       {}
func (GamepadConnect) isEvent()      {}
func (GamepadDisconnect) isEvent()   {}
func (GamepadButtonInput) isEvent()  {}
func (GamepadButtonChange) isEvent() {}
func (GamepadAxisChange) isEvent()   {}
func (AppSuspend) isEvent()          {}
func (AppResume) isEvent()           {}
