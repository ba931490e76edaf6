package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove/v2/engine/core"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/hubastard/grove/v2/engine/logx"
)

var _ core.GamepadSource = (*GLFWGamepads)(nil)

var buttonTable = [...]struct {
	glfw glfw.GamepadButton
	pad  input.GamepadButton
}{
	{glfw.ButtonA, input.GamepadSouth},
	{glfw.ButtonB, input.GamepadEast},
	{glfw.ButtonY, input.GamepadNorth},
	{glfw.ButtonX, input.GamepadWest},
	{glfw.ButtonLeftBumper, input.GamepadLeftBumper},
	{glfw.ButtonRightBumper, input.GamepadRightBumper},
	{glfw.ButtonBack, input.GamepadSelect},
	{glfw.ButtonStart, input.GamepadStart},
	{glfw.ButtonGuide, input.GamepadMode},
	{glfw.ButtonLeftThumb, input.GamepadLeftThumb},
	{glfw.ButtonRightThumb, input.GamepadRightThumb},
	{glfw.ButtonDpadUp, input.GamepadDPadUp},
	{glfw.ButtonDpadRight, input.GamepadDPadRight},
	{glfw.ButtonDpadDown, input.GamepadDPadDown},
	{glfw.ButtonDpadLeft, input.GamepadDPadLeft},
}

var axisTable = [...]struct {
	glfw glfw.GamepadAxis
	pad  input.GamepadAxis
}{
	{glfw.AxisLeftX, input.AxisLeftX},
	{glfw.AxisLeftY, input.AxisLeftY},
	{glfw.AxisRightX, input.AxisRightX},
	{glfw.AxisRightY, input.AxisRightY},
	{glfw.AxisLeftTrigger, input.AxisLeftTrigger},
	{glfw.AxisRightTrigger, input.AxisRightTrigger},
}

// GLFWGamepads reports joysticks with a gamepad mapping as gamepads by
// diffing their state on every poll.
type GLFWGamepads struct {
	pending []input.GamepadEvent
	last    map[glfw.Joystick]glfw.GamepadState
}

// NewGLFWGamepads must be called after glfw.Init, on the main thread.
func NewGLFWGamepads() *GLFWGamepads {
	g := &GLFWGamepads{last: make(map[glfw.Joystick]glfw.GamepadState)}
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.IsGamepad() {
			g.connect(joy)
		}
	}
	glfw.SetJoystickCallback(func(joy glfw.Joystick, ev glfw.PeripheralEvent) {
		switch ev {
		case glfw.Connected:
			if joy.IsGamepad() {
				g.connect(joy)
			}
		case glfw.Disconnected:
			if _, ok := g.last[joy]; ok {
				delete(g.last, joy)
				g.pending = append(g.pending, input.GamepadEvent{ID: input.GamepadID(joy), Kind: input.GamepadDisconnected})
			}
		}
	})
	return g
}

func (g *GLFWGamepads) connect(joy glfw.Joystick) {
	logx.Logger().Info("gamepad connected", "id", int(joy), "name", joy.GetGamepadName())
	g.last[joy] = glfw.GamepadState{}
	g.pending = append(g.pending, input.GamepadEvent{ID: input.GamepadID(joy), Kind: input.GamepadConnected})
}

func (g *GLFWGamepads) PollGamepads() []input.GamepadEvent {
	out := g.pending
	g.pending = nil
	for joy, prev := range g.last {
		st := joy.GetGamepadState()
		if st == nil {
			continue
		}
		out = diffGamepad(out, input.GamepadID(joy), prev, *st)
		g.last[joy] = *st
	}
	return out
}

// diffGamepad appends the events that turn prev into cur.
func diffGamepad(out []input.GamepadEvent, id input.GamepadID, prev, cur glfw.GamepadState) []input.GamepadEvent {
	for _, b := range buttonTable {
		was, is := prev.Buttons[b.glfw] == glfw.Press, cur.Buttons[b.glfw] == glfw.Press
		switch {
		case is && !was:
			out = append(out, input.GamepadEvent{ID: id, Kind: input.GamepadButtonPressed, Button: b.pad})
		case was && !is:
			out = append(out, input.GamepadEvent{ID: id, Kind: input.GamepadButtonReleased, Button: b.pad})
		}
	}
	for _, a := range axisTable {
		v := cur.Axes[a.glfw]
		if v == prev.Axes[a.glfw] {
			continue
		}
		out = append(out, input.GamepadEvent{ID: id, Kind: input.GamepadAxisChanged, Axis: a.pad, Value: v})
		// Triggers are also analog buttons in [0, 1].
		switch a.pad {
		case input.AxisLeftTrigger:
			out = append(out, input.GamepadEvent{ID: id, Kind: input.GamepadButtonChanged, Button: input.GamepadLeftTrigger, Value: (v + 1) / 2})
		case input.AxisRightTrigger:
			out = append(out, input.GamepadEvent{ID: id, Kind: input.GamepadButtonChanged, Button: input.GamepadRightTrigger, Value: (v + 1) / 2})
		}
	}
	return out
}
