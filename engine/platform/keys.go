package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove/v2/engine/input"
)

var keyTable = map[glfw.Key]input.Key{
	glfw.KeySpace:         input.KeySpace,
	glfw.KeyApostrophe:    input.KeyApostrophe,
	glfw.KeyComma:         input.KeyComma,
	glfw.KeyMinus:         input.KeyMinus,
	glfw.KeyPeriod:        input.KeyPeriod,
	glfw.KeySlash:         input.KeySlash,
	glfw.Key0:             input.Key0,
	glfw.Key1:             input.Key1,
	glfw.Key2:             input.Key2,
	glfw.Key3:             input.Key3,
	glfw.Key4:             input.Key4,
	glfw.Key5:             input.Key5,
	glfw.Key6:             input.Key6,
	glfw.Key7:             input.Key7,
	glfw.Key8:             input.Key8,
	glfw.Key9:             input.Key9,
	glfw.KeySemicolon:     input.KeySemicolon,
	glfw.KeyEqual:         input.KeyEqual,
	glfw.KeyA:             input.KeyA,
	glfw.KeyB:             input.KeyB,
	glfw.KeyC:             input.KeyC,
	glfw.KeyD:             input.KeyD,
	glfw.KeyE:             input.KeyE,
	glfw.KeyF:             input.KeyF,
	glfw.KeyG:             input.KeyG,
	glfw.KeyH:             input.KeyH,
	glfw.KeyI:             input.KeyI,
	glfw.KeyJ:             input.KeyJ,
	glfw.KeyK:             input.KeyK,
	glfw.KeyL:             input.KeyL,
	glfw.KeyM:             input.KeyM,
	glfw.KeyN:             input.KeyN,
	glfw.KeyO:             input.KeyO,
	glfw.KeyP:             input.KeyP,
	glfw.KeyQ:             input.KeyQ,
	glfw.KeyR:             input.KeyR,
	glfw.KeyS:             input.KeyS,
	glfw.KeyT:             input.KeyT,
	glfw.KeyU:             input.KeyU,
	glfw.KeyV:             input.KeyV,
	glfw.KeyW:             input.KeyW,
	glfw.KeyX:             input.KeyX,
	glfw.KeyY:             input.KeyY,
	glfw.KeyZ:             input.KeyZ,
	glfw.KeyLeftBracket:   input.KeyLeftBracket,
	glfw.KeyBackslash:     input.KeyBackslash,
	glfw.KeyRightBracket:  input.KeyRightBracket,
	glfw.KeyGraveAccent:   input.KeyGraveAccent,
	glfw.KeyEscape:        input.KeyEscape,
	glfw.KeyEnter:         input.KeyEnter,
	glfw.KeyTab:           input.KeyTab,
	glfw.KeyBackspace:     input.KeyBackspace,
	glfw.KeyInsert:        input.KeyInsert,
	glfw.KeyDelete:        input.KeyDelete,
	glfw.KeyRight:         input.KeyRight,
	glfw.KeyLeft:          input.KeyLeft,
	glfw.KeyDown:          input.KeyDown,
	glfw.KeyUp:            input.KeyUp,
	glfw.KeyPageUp:        input.KeyPageUp,
	glfw.KeyPageDown:      input.KeyPageDown,
	glfw.KeyHome:          input.KeyHome,
	glfw.KeyEnd:           input.KeyEnd,
	glfw.KeyCapsLock:      input.KeyCapsLock,
	glfw.KeyScrollLock:    input.KeyScrollLock,
	glfw.KeyNumLock:       input.KeyNumLock,
	glfw.KeyPrintScreen:   input.KeyPrintScreen,
	glfw.KeyPause:         input.KeyPause,
	glfw.KeyF1:            input.KeyF1,
	glfw.KeyF2:            input.KeyF2,
	glfw.KeyF3:            input.KeyF3,
	glfw.KeyF4:            input.KeyF4,
	glfw.KeyF5:            input.KeyF5,
	glfw.KeyF6:            input.KeyF6,
	glfw.KeyF7:            input.KeyF7,
	glfw.KeyF8:            input.KeyF8,
	glfw.KeyF9:            input.KeyF9,
	glfw.KeyF10:           input.KeyF10,
	glfw.KeyF11:           input.KeyF11,
	glfw.KeyF12:           input.KeyF12,
	glfw.KeyKP0:           input.KeyNumpad0,
	glfw.KeyKP1:           input.KeyNumpad1,
	glfw.KeyKP2:           input.KeyNumpad2,
	glfw.KeyKP3:           input.KeyNumpad3,
	glfw.KeyKP4:           input.KeyNumpad4,
	glfw.KeyKP5:           input.KeyNumpad5,
	glfw.KeyKP6:           input.KeyNumpad6,
	glfw.KeyKP7:           input.KeyNumpad7,
	glfw.KeyKP8:           input.KeyNumpad8,
	glfw.KeyKP9:           input.KeyNumpad9,
	glfw.KeyKPDecimal:     input.KeyNumpadDecimal,
	glfw.KeyKPDivide:      input.KeyNumpadDivide,
	glfw.KeyKPMultiply:    input.KeyNumpadMultiply,
	glfw.KeyKPSubtract:    input.KeyNumpadSubtract,
	glfw.KeyKPAdd:         input.KeyNumpadAdd,
	glfw.KeyKPEnter:       input.KeyNumpadEnter,
	glfw.KeyKPEqual:       input.KeyNumpadEqual,
	glfw.KeyLeftShift:     input.KeyLeftShift,
	glfw.KeyLeftControl:   input.KeyLeftControl,
	glfw.KeyLeftAlt:       input.KeyLeftAlt,
	glfw.KeyLeftSuper:     input.KeyLeftSuper,
	glfw.KeyRightShift:    input.KeyRightShift,
	glfw.KeyRightControl:  input.KeyRightControl,
	glfw.KeyRightAlt:      input.KeyRightAlt,
	glfw.KeyRightSuper:    input.KeyRightSuper,
	glfw.KeyMenu:          input.KeyMenu,
}

func translateKey(k glfw.Key) input.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return input.KeyUnknown
}

func translateMods(m glfw.ModifierKey) input.Modifiers {
	return input.Modifiers{
		Shift: m&glfw.ModShift != 0,
		Ctrl:  m&glfw.ModControl != 0,
		Alt:   m&glfw.ModAlt != 0,
		Logo:  m&glfw.ModSuper != 0,
	}
}

func translateAction(a glfw.Action) input.Action {
	if a == glfw.Release {
		return input.ActionUp
	}
	// Press and Repeat; a repeat reaches the tracker as a second down.
	return input.ActionDown
}

func translateButton(b glfw.MouseButton) (input.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.MouseLeft, true
	case glfw.MouseButtonRight:
		return input.MouseRight, true
	case glfw.MouseButtonMiddle:
		return input.MouseMiddle, true
	case glfw.MouseButton4:
		return input.MouseBack, true
	case glfw.MouseButton5:
		return input.MouseForward, true
	}
	return 0, false
}
