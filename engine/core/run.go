// Package core owns the run loop: it pumps platform events into the input
// trackers and the Game, and runs update, render and present when the frame
// timer says a tick is due.
package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/hubastard/grove/v2/engine/logx"
	"github.com/hubastard/grove/v2/engine/profiler"
	"github.com/hubastard/grove/v2/engine/timer"
)

// State of the run loop. Finished and Broken are terminal.
type State uint8

const (
	StateReady State = iota
	StateRunning
	StateFinished
	StateBroken
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateBroken:
		return "broken"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

func (s State) terminal() bool { return s == StateFinished || s == StateBroken }

// Engine holds every subsystem of one window.
type Engine struct {
	win      Window
	gamepads GamepadSource
	gfx      *renderer2d.Renderer2D
	input    *input.State
	timer    *timer.Timer
	ctx      *Context

	clear     colors.Color
	state     State
	err       error
	focused   bool
	suspended bool
	scale     float32
}

type Option func(*options)

type options struct {
	gamepads GamepadSource
	timer    []timer.Option
}

// WithGamepads adds a gamepad source polled on every frame opportunity.
func WithGamepads(src GamepadSource) Option {
	return func(o *options) { o.gamepads = src }
}

// WithClock replaces the wall clock of the frame timer.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.timer = append(o.timer, timer.WithClock(now)) }
}

// New builds an engine in the Ready state drawing to dev inside win.
func New(cfg config.Config, win Window, dev gfx.Device, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tm, err := timer.New(cfg.Timer, o.timer...)
	if err != nil {
		return nil, err
	}
	r2d, err := renderer2d.New(dev, renderer2d.Options{
		InitialVertices: cfg.Graphics.InitialVertices,
		MaxBufferBytes:  cfg.Graphics.MaxBufferBytes,
	})
	if err != nil {
		return nil, err
	}

	e := &Engine{
		win:      win,
		gamepads: o.gamepads,
		gfx:      r2d,
		input:    input.New(cfg.Input.MaxTrackedCodes),
		timer:    tm,
		clear:    cfg.Graphics.ClearColor,
		focused:  true,
		scale:    win.ScaleFactor(),
	}
	e.ctx = &Context{e: e}
	w, h := win.PhysicalSize()
	r2d.Resize(w, h, e.scale)
	return e, nil
}

func (e *Engine) State() State { return e.state }

// Err is the error that broke the engine, if any.
func (e *Engine) Err() error { return e.err }

func (e *Engine) Context() *Context { return e.ctx }

// Quit finishes a running engine. It is a no-op in a terminal state.
func (e *Engine) Quit() {
	if e.state.terminal() {
		return
	}
	e.setState(StateFinished)
}

// Exit finishes the engine, or breaks it when err is non-nil. It is a no-op
// in a terminal state.
func (e *Engine) Exit(err error) {
	if err == nil {
		e.Quit()
		return
	}
	e.fail(err)
}

func (e *Engine) fail(err error) {
	if e.state.terminal() {
		return
	}
	e.err = err
	e.setState(StateBroken)
	logx.Logger().Error("engine broken", "err", err)
}

func (e *Engine) setState(s State) {
	logx.Logger().Info("engine state", "from", e.state, "to", s)
	e.state = s
}

// Run runs game until the window closes, Quit is called or a callback fails.
func (e *Engine) Run(game Game) error {
	return e.RunWith(func(*Context) (Game, error) { return game, nil })
}

// RunWith builds the game from the running engine's context, then runs it.
// It may be called once, on an engine in the Ready state.
func (e *Engine) RunWith(init func(ctx *Context) (Game, error)) error {
	if e.state != StateReady {
		return errs.State("core.Run", "engine is %s, not %s", e.state, StateReady)
	}
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer e.gfx.Release()

	e.setState(StateRunning)
	game, err := init(e.ctx)
	if err != nil {
		e.fail(errs.New(errs.ErrInit, "core.Run", err))
		e.win.Close()
		return e.err
	}
	if s, ok := game.(Starter); ok {
		if err := s.Start(e.ctx); err != nil {
			e.fail(callbackErr("core.Start", err))
		}
	}

	e.timer.ResetTick()
	emit := func(ev RawEvent) { e.dispatch(game, ev) }
	for e.state == StateRunning {
		e.win.PollEvents(emit)
	}

	if s, ok := game.(Shutdowner); ok {
		s.Shutdown(e.ctx)
	}
	e.win.Close()
	logx.Logger().Info("engine exit", "state", e.state, "ticks", e.timer.Ticks())
	return e.err
}

// dispatch handles one raw event. Nothing is dispatched once the engine has
// left the running state, including the rest of the current poll.
func (e *Engine) dispatch(game Game, raw RawEvent) {
	if e.state != StateRunning {
		return
	}
	switch ev := raw.(type) {
	case RawClose:
		if handled, ok := e.notify(game, WindowClose{}); ok && !handled {
			e.Quit()
		}
	case RawResize:
		if ev.Width < 1 || ev.Height < 1 {
			return
		}
		e.scale = ev.Scale
		e.gfx.Resize(ev.Width, ev.Height, ev.Scale)
		e.notify(game, WindowResize{Size: e.ctx.LogicalSize()})
	case RawMove:
		e.notify(game, WindowMove{Position: e.logical(float64(ev.X), float64(ev.Y))})
	case RawFocus:
		e.focused = ev.Focused
		e.notify(game, WindowFocus{Focused: ev.Focused})
	case RawChar:
		e.notify(game, ReceivedChar{Rune: ev.Rune})
	case RawRedraw:
		e.frame(game)
	case RawSuspend:
		e.suspended = true
		e.notify(game, AppSuspend{})
	case RawResume:
		e.suspended = false
		e.timer.ResetTick()
		e.notify(game, AppResume{})
	case RawDestroyed:
		e.Quit()
	default:
		if ev, ok := e.narrowInput(raw); ok {
			e.notify(game, ev)
			return
		}
		logx.Logger().Warn("dropped raw event", "type", fmt.Sprintf("%T", raw))
	}
}

// callbackErr keeps engine errors as they are and marks anything else as an
// opaque runtime failure.
func callbackErr(op string, err error) error {
	if errs.KindOf(err) != nil {
		return err
	}
	return errs.New(errs.ErrRuntime, op, err)
}

// notify forwards ev to the game. ok is false when the callback failed.
func (e *Engine) notify(game Game, ev Event) (handled, ok bool) {
	handled, err := game.Event(e.ctx, ev)
	if err != nil {
		e.fail(callbackErr("core.Event", err))
		return false, false
	}
	return handled, true
}

// frame runs one frame opportunity: gamepads, then, if the timer is due,
// update, render, present and the collapse of per-frame input edges.
func (e *Engine) frame(game Game) {
	e.pollGamepads(game)
	if e.state != StateRunning || e.suspended || !e.timer.TickDue() {
		return
	}
	defer profiler.Start("frame")()

	// A quit requested by a callback is observed at the next pump wake, so
	// the tick still completes. A broken engine never presents.
	if err := e.update(game); err != nil {
		e.fail(callbackErr("core.Update", err))
		return
	}
	if e.state == StateBroken {
		return
	}
	if err := e.render(game); err != nil {
		e.fail(callbackErr("core.Render", err))
		return
	}
	if e.state == StateBroken {
		return
	}
	e.present()
	e.input.ClearStates()
}

func (e *Engine) update(game Game) error {
	defer profiler.Start("update")()
	return game.Update(e.ctx)
}

func (e *Engine) render(game Game) error {
	defer profiler.Start("render")()
	if err := e.gfx.BeginFrame(); err != nil {
		return err
	}
	if err := e.gfx.Clear(e.clear); err != nil {
		return err
	}
	if err := game.Render(e.ctx); err != nil {
		return err
	}
	return e.gfx.EndFrame()
}

func (e *Engine) present() {
	defer profiler.Start("present")()
	e.win.SwapBuffers()
}
