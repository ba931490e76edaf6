package input

import "slices"

// Key is a layout-independent virtual key code.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadMultiply
	KeyNumpadSubtract
	KeyNumpadAdd
	KeyNumpadEnter
	KeyNumpadEqual
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyMenu
)

// Modifiers is replaced wholesale on every modifier-change notification.
type Modifiers struct {
	Shift, Ctrl, Alt, Logo bool
}

func (m Modifiers) Any() bool { return m.Shift || m.Ctrl || m.Alt || m.Logo }

// Keyboard tracks key states and the modifier set.
type Keyboard struct {
	keys *States[Key]
	mods Modifiers
}

func NewKeyboard(limit int) *Keyboard {
	return &Keyboard{keys: NewStates[Key](limit)}
}

// HandleKey applies a key transition; the result is the repeated flag.
func (k *Keyboard) HandleKey(key Key, action Action) bool {
	return k.keys.Handle(key, action)
}

func (k *Keyboard) HandleModifiers(m Modifiers) { k.mods = m }

func (k *Keyboard) IsKeyDown(key Key) bool { return k.keys.IsDown(key) }
func (k *Keyboard) IsKeyHold(key Key) bool { return k.keys.IsHold(key) }
func (k *Keyboard) IsKeyUp(key Key) bool   { return k.keys.IsUp(key) }
func (k *Keyboard) KeyState(key Key) KeyState {
	return k.keys.State(key)
}
func (k *Keyboard) Modifiers() Modifiers { return k.mods }

// HeldKeys returns the keys currently down or held, in key-code order.
func (k *Keyboard) HeldKeys() []Key {
	held := k.keys.Held()
	slices.Sort(held)
	return held
}

func (k *Keyboard) clear() { k.keys.Clear() }
