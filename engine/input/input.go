package input

// State groups the trackers of every input device.
type State struct {
	Keyboard *Keyboard
	Mouse    *Mouse
	Touch    *Touch
	Touchpad *Touchpad
	Gamepad  *Gamepad
}

// New builds all trackers; limit bounds each key/button map (0 is unbounded).
func New(limit int) *State {
	return &State{
		Keyboard: NewKeyboard(limit),
		Mouse:    NewMouse(limit),
		Touch:    NewTouch(),
		Touchpad: NewTouchpad(),
		Gamepad:  NewGamepad(limit),
	}
}

// ClearStates collapses every per-frame edge. Called once per presented frame.
func (s *State) ClearStates() {
	s.Keyboard.clear()
	s.Mouse.clear()
	s.Touchpad.clear()
	s.Gamepad.clear()
}
