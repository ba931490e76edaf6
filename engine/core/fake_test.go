package core_test

import (
	"testing"
	"time"

	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/core"
	"github.com/hubastard/grove/v2/engine/gfx/gfxtest"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays one batch of raw events per PollEvents call. Once the
// script runs out it reports the window destroyed.
type fakeWindow struct {
	batches [][]core.RawEvent
	polls   int
	log     *[]string
	swaps   int
	closed  bool
	title   string
	scale   float32
}

func (w *fakeWindow) PollEvents(emit func(core.RawEvent)) {
	w.polls++
	if len(w.batches) == 0 {
		emit(core.RawDestroyed{})
		return
	}
	batch := w.batches[0]
	w.batches = w.batches[1:]
	for _, ev := range batch {
		emit(ev)
	}
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	*w.log = append(*w.log, "present")
}

func (w *fakeWindow) ScaleFactor() float32     { return w.scale }
func (w *fakeWindow) PhysicalSize() (int, int) { return 800, 600 }
func (w *fakeWindow) SetTitle(title string)    { w.title = title }
func (w *fakeWindow) Close()                   { w.closed = true }

type fakePads struct{ polls [][]input.GamepadEvent }

func (p *fakePads) PollGamepads() []input.GamepadEvent {
	if len(p.polls) == 0 {
		return nil
	}
	out := p.polls[0]
	p.polls = p.polls[1:]
	return out
}

// recorder is a Game whose hooks can be overridden per test.
type recorder struct {
	log      []string
	events   []core.Event
	onUpdate func(ctx *core.Context) error
	onRender func(ctx *core.Context) error
	onEvent  func(ctx *core.Context, ev core.Event) (bool, error)
}

func (g *recorder) Update(ctx *core.Context) error {
	g.log = append(g.log, "update")
	if g.onUpdate != nil {
		return g.onUpdate(ctx)
	}
	return nil
}

func (g *recorder) Render(ctx *core.Context) error {
	g.log = append(g.log, "render")
	if g.onRender != nil {
		return g.onRender(ctx)
	}
	return nil
}

func (g *recorder) Event(ctx *core.Context, ev core.Event) (bool, error) {
	g.events = append(g.events, ev)
	if g.onEvent != nil {
		return g.onEvent(ctx, ev)
	}
	return false, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newEngine(t *testing.T, g *recorder, opts []core.Option, batches ...[]core.RawEvent) (*core.Engine, *fakeWindow, *gfxtest.Device) {
	t.Helper()
	cfg := config.Default()
	cfg.Timer.FPS = 0
	win := &fakeWindow{batches: batches, log: &g.log, scale: 1}
	dev := gfxtest.NewDevice(800, 600)
	clock := &fakeClock{t: time.Unix(0, 0)}
	opts = append(opts, core.WithClock(clock.now))
	e, err := core.New(cfg, win, dev, opts...)
	require.NoError(t, err)
	return e, win, dev
}
