package core

import (
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/input"
)

// narrowInput applies an input raw event to the trackers and returns the
// matching game event. ok is false for events that are not input.
func (e *Engine) narrowInput(raw RawEvent) (Event, bool) {
	in := e.input
	switch ev := raw.(type) {
	case RawKey:
		rep := in.Keyboard.HandleKey(ev.Key, ev.Action)
		return KeyboardInput{Key: ev.Key, Scancode: ev.Scancode, Action: ev.Action, Repeated: rep}, true
	case RawModifiers:
		in.Keyboard.HandleModifiers(ev.Mods)
		return ModifiersChange{Modifiers: ev.Mods}, true
	case RawCursorMove:
		p := e.logical(ev.X, ev.Y)
		in.Mouse.HandleMove(p)
		return MouseMove{Position: p}, true
	case RawCursorEnter:
		in.Mouse.HandleEnter()
		return MouseEnterWindow{}, true
	case RawCursorLeave:
		in.Mouse.HandleLeave()
		return MouseLeaveWindow{}, true
	case RawWheel:
		if ev.Pixels {
			d := e.logical(ev.DX, ev.DY)
			in.Touchpad.HandleScroll(d, ev.Phase)
			return TouchpadScroll{Delta: d, Phase: ev.Phase}, true
		}
		d := geom.V(float32(ev.DX), float32(ev.DY))
		in.Mouse.HandleWheel(d)
		return MouseWheel{Delta: d}, true
	case RawMouseButton:
		rep := in.Mouse.HandleButton(ev.Button, ev.Action)
		return MouseInput{Button: ev.Button, Action: ev.Action, Repeated: rep}, true
	case RawTouch:
		p := e.logical(ev.X, ev.Y)
		in.Touch.Handle(ev.ID, ev.Phase, p)
		return TouchInput{ID: ev.ID, Phase: ev.Phase, Position: p}, true
	case RawTouchpadPressure:
		in.Touchpad.HandlePress(ev.Pressure, ev.Stage)
		return TouchpadPress{Pressure: ev.Pressure, Stage: ev.Stage}, true
	}
	return nil, false
}

// pollGamepads drains the gamepad source into the tracker and the game.
func (e *Engine) pollGamepads(game Game) {
	if e.gamepads == nil {
		return
	}
	pad := e.input.Gamepad
	for _, ev := range e.gamepads.PollGamepads() {
		if e.state != StateRunning {
			return
		}
		var out Event
		switch ev.Kind {
		case input.GamepadConnected:
			pad.HandleConnect(ev.ID)
			out = GamepadConnect{ID: ev.ID}
		case input.GamepadDisconnected:
			pad.HandleDisconnect(ev.ID)
			out = GamepadDisconnect{ID: ev.ID}
		case input.GamepadButtonPressed, input.GamepadButtonReleased:
			action := input.ActionDown
			if ev.Kind == input.GamepadButtonReleased {
				action = input.ActionUp
			}
			rep := pad.HandleButton(ev.ID, ev.Button, action)
			out = GamepadButtonInput{ID: ev.ID, Button: ev.Button, Action: action, Repeated: rep}
		case input.GamepadButtonChanged:
			pad.HandleButtonChange(ev.ID, ev.Button, ev.Value)
			out = GamepadButtonChange{ID: ev.ID, Button: ev.Button, Value: ev.Value}
		case input.GamepadAxisChanged:
			pad.HandleAxis(ev.ID, ev.Axis, ev.Value)
			out = GamepadAxisChange{ID: ev.ID, Axis: ev.Axis, Value: ev.Value}
		default:
			continue
		}
		e.notify(game, out)
	}
}

// logical converts physical pixels to logical ones.
func (e *Engine) logical(x, y float64) geom.Vec2 {
	s := float64(e.scale)
	if s <= 0 {
		s = 1
	}
	return geom.V(float32(x/s), float32(y/s))
}
