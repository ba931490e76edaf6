package core

import "github.com/hubastard/grove/v2/engine/input"

// RawEvent is what a platform window reports, in physical pixels. The run
// loop narrows each one into input mutations and a game-facing Event.
type RawEvent interface{ isRawEvent() }

type RawClose struct{}

type RawResize struct {
	Width, Height int // physical framebuffer size
	Scale         float32
}

type RawMove struct{ X, Y int }

type RawFocus struct{ Focused bool }

type RawChar struct{ Rune rune }

type RawKey struct {
	Key      input.Key
	Scancode int
	Action   input.Action
}

type RawModifiers struct{ Mods input.Modifiers }

type RawCursorMove struct{ X, Y float64 }

type RawCursorEnter struct{}

type RawCursorLeave struct{}

// RawWheel is a scroll. Line deltas come from mouse wheels; pixel deltas
// come from touchpads and carry a gesture phase.
type RawWheel struct {
	DX, DY float64
	Pixels bool
	Phase  input.TouchPhase
}

type RawMouseButton struct {
	Button input.MouseButton
	Action input.Action
}

type RawTouch struct {
	ID    uint64
	Phase input.TouchPhase
	X, Y  float64
}

type RawTouchpadPressure struct {
	Pressure float32
	Stage    int64
}

// RawRedraw is the frame opportunity.
type RawRedraw struct{}

type RawSuspend struct{}

type RawResume struct{}

type RawDestroyed struct{}

func (RawClose) isRawEvent()            {}
func (RawResize) isRawEvent()           {}
func (RawMove) isRawEvent()             {}
func (RawFocus) isRawEvent()            {}
func (RawChar) isRawEvent()             {}
func (RawKey) isRawEvent()              {}
func (RawModifiers) isRawEvent()        {}
func (RawCursorMove) isRawEvent()       {}
func (RawCursorEnter) isRawEvent()      {}
func (RawCursorLeave) isRawEvent()      {}
func (RawWheel) isRawEvent()            {}
func (RawMouseButton) isRawEvent()      {}
func (RawTouch) isRawEvent()            {}
func (RawTouchpadPressure) isRawEvent() {}
func (RawRedraw) isRawEvent()           {}
func (RawSuspend) isRawEvent()          {}
func (RawResume) isRawEvent()           {}
func (RawDestroyed) isRawEvent()        {}

// Window abstraction.
type Window interface {
	// PollEvents delivers every pending event to emit, ending with a
	// RawRedraw when a frame may be drawn. It may block waiting for events.
	PollEvents(emit func(RawEvent))
	SwapBuffers()
	ScaleFactor() float32
	PhysicalSize() (w, h int)
	SetTitle(title string)
	// Close asks the platform to tear the window down.
	Close()
}

// GamepadSource is polled once per frame opportunity.
type GamepadSource interface {
	PollGamepads() []input.GamepadEvent
}
