package input

import "github.com/hubastard/grove/v2/engine/geom"

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

// Mouse tracks buttons, the cursor position in logical coordinates, and the
// wheel delta accumulated during the current frame.
type Mouse struct {
	buttons *States[MouseButton]
	pos     geom.Vec2
	hasPos  bool
	inside  bool
	wheel   geom.Vec2
}

func NewMouse(limit int) *Mouse {
	return &Mouse{buttons: NewStates[MouseButton](limit)}
}

func (m *Mouse) HandleButton(b MouseButton, action Action) bool {
	return m.buttons.Handle(b, action)
}

func (m *Mouse) HandleMove(p geom.Vec2) {
	m.pos, m.hasPos = p, true
}

func (m *Mouse) HandleEnter() { m.inside = true }

// HandleLeave forgets the cursor position.
func (m *Mouse) HandleLeave() {
	m.inside = false
	m.hasPos = false
	m.pos = geom.Vec2{}
}

func (m *Mouse) HandleWheel(delta geom.Vec2) { m.wheel = m.wheel.Add(delta) }

func (m *Mouse) IsButtonDown(b MouseButton) bool { return m.buttons.IsDown(b) }
func (m *Mouse) IsButtonHold(b MouseButton) bool { return m.buttons.IsHold(b) }
func (m *Mouse) IsButtonUp(b MouseButton) bool   { return m.buttons.IsUp(b) }

// Position is the last cursor position; ok is false while the cursor is
// outside the window or has not moved yet.
func (m *Mouse) Position() (p geom.Vec2, ok bool) { return m.pos, m.hasPos }

func (m *Mouse) InsideWindow() bool { return m.inside }

// WheelDelta is the scroll accumulated in the current frame, in lines.
func (m *Mouse) WheelDelta() geom.Vec2 { return m.wheel }

func (m *Mouse) clear() {
	m.buttons.Clear()
	m.wheel = geom.Vec2{}
}
