// Package platform adapts GLFW to the core.Window and core.GamepadSource
// contracts.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/core"
	"github.com/hubastard/grove/v2/engine/input"
)

var _ core.Window = (*GLFWWindow)(nil)

// GLFWWindow implements core.Window. GLFW callbacks fire inside
// glfw.PollEvents; they are queued and handed to the run loop in order.
type GLFWWindow struct {
	w     *glfw.Window
	queue []core.RawEvent
	mods  input.Modifiers
}

// NewGLFWWindow initializes GLFW and opens a window with a current OpenGL
// 3.3 core context. Must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg config.Window) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win}
	gw.installCallbacks()
	return gw, nil
}

func (g *GLFWWindow) emit(ev core.RawEvent) { g.queue = append(g.queue, ev) }

func (g *GLFWWindow) installCallbacks() {
	win := g.w
	win.SetCloseCallback(func(w *glfw.Window) {
		// The run loop decides; a vetoed close must leave the window open.
		w.SetShouldClose(false)
		g.emit(core.RawClose{})
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(core.RawResize{Width: w, Height: h, Scale: g.ScaleFactor()})
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		w, h := g.PhysicalSize()
		g.emit(core.RawResize{Width: w, Height: h, Scale: x})
	})
	win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		fx, fy := g.toPhysical(float64(x), float64(y))
		g.emit(core.RawMove{X: int(fx), Y: int(fy)})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		g.emit(core.RawFocus{Focused: focused})
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			g.emit(core.RawSuspend{})
		} else {
			g.emit(core.RawResume{})
		}
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		g.emit(core.RawChar{Rune: r})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		g.updateMods(mods)
		k := translateKey(key)
		if k == input.KeyUnknown {
			return
		}
		g.emit(core.RawKey{Key: k, Scancode: scancode, Action: translateAction(action)})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		px, py := g.toPhysical(x, y)
		g.emit(core.RawCursorMove{X: px, Y: py})
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			g.emit(core.RawCursorEnter{})
		} else {
			g.emit(core.RawCursorLeave{})
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.RawWheel{DX: xoff, DY: yoff})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		g.updateMods(mods)
		if mb, ok := translateButton(b); ok {
			g.emit(core.RawMouseButton{Button: mb, Action: translateAction(action)})
		}
	})
}

// updateMods reports a modifier change before the event that carried it.
func (g *GLFWWindow) updateMods(m glfw.ModifierKey) {
	mods := translateMods(m)
	if mods != g.mods {
		g.mods = mods
		g.emit(core.RawModifiers{Mods: mods})
	}
}

// toPhysical converts GLFW screen coordinates to framebuffer pixels.
func (g *GLFWWindow) toPhysical(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

// PollEvents processes pending OS events and hands them to emit, followed
// by a redraw opportunity. GLFW has no touch or pressure events.
func (g *GLFWWindow) PollEvents(emit func(core.RawEvent)) {
	glfw.PollEvents()
	queue := g.queue
	g.queue = g.queue[:0]
	for _, ev := range queue {
		emit(ev)
	}
	emit(core.RawRedraw{})
}

func (g *GLFWWindow) SwapBuffers()              { g.w.SwapBuffers() }
func (g *GLFWWindow) PhysicalSize() (int, int) { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)         { g.w.SetTitle(t) }
func (g *GLFWWindow) Close()                    { g.w.SetShouldClose(true) }

func (g *GLFWWindow) ScaleFactor() float32 {
	x, _ := g.w.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

// Destroy releases the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}
