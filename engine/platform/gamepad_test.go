package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/stretchr/testify/assert"
)

func TestDiffGamepad(t *testing.T) {
	var prev, cur glfw.GamepadState
	prev.Buttons[glfw.ButtonB] = glfw.Press
	cur.Buttons[glfw.ButtonA] = glfw.Press
	cur.Axes[glfw.AxisLeftX] = 0.5
	cur.Axes[glfw.AxisRightTrigger] = 1

	got := diffGamepad(nil, 2, prev, cur)
	assert.Equal(t, []input.GamepadEvent{
		{ID: 2, Kind: input.GamepadButtonPressed, Button: input.GamepadSouth},
		{ID: 2, Kind: input.GamepadButtonReleased, Button: input.GamepadEast},
		{ID: 2, Kind: input.GamepadAxisChanged, Axis: input.AxisLeftX, Value: 0.5},
		{ID: 2, Kind: input.GamepadAxisChanged, Axis: input.AxisRightTrigger, Value: 1},
		{ID: 2, Kind: input.GamepadButtonChanged, Button: input.GamepadRightTrigger, Value: 1},
	}, got)

	assert.Empty(t, diffGamepad(nil, 2, cur, cur))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, input.KeyEscape, translateKey(glfw.KeyEscape))
	assert.Equal(t, input.KeyNumpad5, translateKey(glfw.KeyKP5))
	assert.Equal(t, input.KeyUnknown, translateKey(glfw.KeyWorld1))
	assert.Equal(t, input.ActionDown, translateAction(glfw.Repeat))
	assert.Equal(t, input.ActionUp, translateAction(glfw.Release))
	assert.Equal(t, input.Modifiers{Shift: true, Logo: true}, translateMods(glfw.ModShift|glfw.ModSuper))
}
