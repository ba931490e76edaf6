package input

import "slices"

type GamepadID int

type GamepadButton int

const (
	GamepadSouth GamepadButton = iota
	GamepadEast
	GamepadNorth
	GamepadWest
	GamepadLeftBumper
	GamepadRightBumper
	GamepadLeftTrigger
	GamepadRightTrigger
	GamepadSelect
	GamepadStart
	GamepadMode
	GamepadLeftThumb
	GamepadRightThumb
	GamepadDPadUp
	GamepadDPadRight
	GamepadDPadDown
	GamepadDPadLeft
)

type GamepadAxis int

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

type GamepadEventKind uint8

const (
	GamepadConnected GamepadEventKind = iota
	GamepadDisconnected
	GamepadButtonPressed
	GamepadButtonReleased
	GamepadButtonChanged
	GamepadAxisChanged
)

// GamepadEvent is one notification from the gamepad device source.
// Button, Axis and Value are meaningful only for the kinds that carry them.
type GamepadEvent struct {
	ID     GamepadID
	Kind   GamepadEventKind
	Button GamepadButton
	Axis   GamepadAxis
	Value  float32
}

type pad struct {
	buttons *States[GamepadButton]
	values  map[GamepadButton]float32
	axes    map[GamepadAxis]float32
}

// Gamepad tracks every connected device.
type Gamepad struct {
	pads  map[GamepadID]*pad
	limit int
}

func NewGamepad(limit int) *Gamepad {
	return &Gamepad{pads: make(map[GamepadID]*pad), limit: limit}
}

func (g *Gamepad) device(id GamepadID) *pad {
	p, ok := g.pads[id]
	if !ok {
		p = &pad{
			buttons: NewStates[GamepadButton](g.limit),
			values:  make(map[GamepadButton]float32),
			axes:    make(map[GamepadAxis]float32),
		}
		g.pads[id] = p
	}
	return p
}

func (g *Gamepad) HandleConnect(id GamepadID) { g.device(id) }

// HandleDisconnect forgets every state of the device.
func (g *Gamepad) HandleDisconnect(id GamepadID) { delete(g.pads, id) }

func (g *Gamepad) HandleButton(id GamepadID, b GamepadButton, action Action) bool {
	return g.device(id).buttons.Handle(b, action)
}

func (g *Gamepad) HandleButtonChange(id GamepadID, b GamepadButton, value float32) {
	g.device(id).values[b] = value
}

func (g *Gamepad) HandleAxis(id GamepadID, a GamepadAxis, value float32) {
	g.device(id).axes[a] = value
}

func (g *Gamepad) IsConnected(id GamepadID) bool {
	_, ok := g.pads[id]
	return ok
}

// IDs lists connected devices in ascending order.
func (g *Gamepad) IDs() []GamepadID {
	ids := make([]GamepadID, 0, len(g.pads))
	for id := range g.pads {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (g *Gamepad) IsButtonDown(id GamepadID, b GamepadButton) bool {
	p, ok := g.pads[id]
	return ok && p.buttons.IsDown(b)
}

func (g *Gamepad) IsButtonHold(id GamepadID, b GamepadButton) bool {
	p, ok := g.pads[id]
	return ok && p.buttons.IsHold(b)
}

func (g *Gamepad) IsButtonUp(id GamepadID, b GamepadButton) bool {
	p, ok := g.pads[id]
	return ok && p.buttons.IsUp(b)
}

// ButtonValue is the last analog value reported for b, 0 if none.
func (g *Gamepad) ButtonValue(id GamepadID, b GamepadButton) float32 {
	if p, ok := g.pads[id]; ok {
		return p.values[b]
	}
	return 0
}

func (g *Gamepad) AxisValue(id GamepadID, a GamepadAxis) float32 {
	if p, ok := g.pads[id]; ok {
		return p.axes[a]
	}
	return 0
}

func (g *Gamepad) clear() {
	for _, p := range g.pads {
		p.buttons.Clear()
	}
}
