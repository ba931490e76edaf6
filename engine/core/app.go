package core

import (
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/hubastard/grove/v2/engine/timer"
)

// Game defines the application hooks.
type Game interface {
	Update(ctx *Context) error // called once per due tick
	Render(ctx *Context) error // called after Update, before present
	// Event is called after the input state reflects ev. Returning true
	// marks it handled, which suppresses the default action (closing the
	// window for WindowClose).
	Event(ctx *Context, ev Event) (handled bool, err error)
}

// Starter is an optional Game hook called once before the first event.
type Starter interface {
	Start(ctx *Context) error
}

// Shutdowner is an optional Game hook called once after the loop ends,
// on success and failure alike.
type Shutdowner interface {
	Shutdown(ctx *Context)
}

// Context exposes engine services to the Game. It is only valid on the
// thread running the loop.
type Context struct{ e *Engine }

func (c *Context) Keyboard() *input.Keyboard { return c.e.input.Keyboard }
func (c *Context) Mouse() *input.Mouse       { return c.e.input.Mouse }
func (c *Context) Touch() *input.Touch       { return c.e.input.Touch }
func (c *Context) Touchpad() *input.Touchpad { return c.e.input.Touchpad }
func (c *Context) Gamepad() *input.Gamepad   { return c.e.input.Gamepad }
func (c *Context) Timer() *timer.Timer       { return c.e.timer }

// Graphics is the 2D pipeline for the current frame.
func (c *Context) Graphics() *renderer2d.Renderer2D { return c.e.gfx }

// Quit ends the loop after the current event.
func (c *Context) Quit() { c.e.Quit() }

// Exit ends the loop; a non-nil err breaks the engine and is returned from Run.
func (c *Context) Exit(err error) { c.e.Exit(err) }

func (c *Context) SetTitle(title string) { c.e.win.SetTitle(title) }
func (c *Context) Focused() bool         { return c.e.focused }
func (c *Context) ScaleFactor() float32  { return c.e.scale }

// LogicalSize is the window size in logical pixels.
func (c *Context) LogicalSize() geom.Vec2 {
	w, h := c.e.gfx.Device().LogicalSize()
	return geom.V(w, h)
}

func (c *Context) State() State { return c.e.state }
