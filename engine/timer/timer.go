// Package timer decides, poll by poll, whether a simulation/render tick is due.
package timer

import (
	"math"
	"time"

	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/errs"
)

// fpsSmoothing is the weight of the newest sample in the real-time FPS average.
const fpsSmoothing = 0.1

// Timer is a fixed-step accumulator. It is polled at the native redraw rate,
// which may be far above the target rate.
type Timer struct {
	now func() time.Time

	fps      float64
	interval time.Duration // 0 means uncapped
	maxLag   int

	start time.Time
	last  time.Time
	accum time.Duration
	delta time.Duration
	ticks uint64

	realFPS float64
}

type Option func(*Timer)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

func New(cfg config.Timer, opts ...Option) (*Timer, error) {
	t := &Timer{now: time.Now, maxLag: cfg.MaxLag}
	for _, o := range opts {
		o(t)
	}
	if t.maxLag < 1 {
		t.maxLag = 1
	}
	if err := t.SetFPS(cfg.FPS); err != nil {
		return nil, err
	}
	t.start = t.now()
	t.last = t.start
	return t, nil
}

// SetFPS changes the target rate; 0 switches to uncapped.
func (t *Timer) SetFPS(fps float64) error {
	if fps < 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return errs.Errorf(errs.ErrInit, "timer.SetFPS", "invalid fps %v", fps)
	}
	t.fps = fps
	if fps == 0 {
		t.interval = 0
	} else {
		t.interval = time.Duration(float64(time.Second) / fps)
	}
	return nil
}

func (t *Timer) FPS() float64 { return t.fps }

// Interval is the fixed step, 0 when uncapped.
func (t *Timer) Interval() time.Duration { return t.interval }

// ResetTick drops any accumulated time and restarts measuring from now.
// Called once before the first poll so startup work does not show up as a
// huge first delta.
func (t *Timer) ResetTick() {
	t.last = t.now()
	t.accum = 0
	t.delta = 0
}

// TickDue accumulates the wall time since the previous poll and reports
// whether a tick should run now. A due tick consumes exactly one interval and
// keeps the remainder, so jitter does not drift the tick count.
func (t *Timer) TickDue() bool {
	now := t.now()
	poll := now.Sub(t.last)
	if poll < 0 {
		poll = 0
	}
	t.last = now
	t.sampleFPS(poll)

	if t.interval == 0 {
		t.delta = poll
		t.ticks++
		return true
	}

	t.accum += poll
	if limit := t.interval * time.Duration(t.maxLag); t.accum > limit {
		t.accum = limit
	}
	if t.accum < t.interval {
		return false
	}
	t.accum -= t.interval
	t.delta = t.interval
	t.ticks++
	return true
}

func (t *Timer) sampleFPS(poll time.Duration) {
	if poll <= 0 {
		return
	}
	inst := float64(time.Second) / float64(poll)
	if t.realFPS == 0 {
		t.realFPS = inst
		return
	}
	t.realFPS += (inst - t.realFPS) * fpsSmoothing
}

// DeltaTime is the step of the most recent due tick.
func (t *Timer) DeltaTime() time.Duration { return t.delta }

// RealTimeFPS is a smoothed poll rate for display. It never feeds DeltaTime.
func (t *Timer) RealTimeFPS() float64 { return t.realFPS }

// TotalTime since the timer was created.
func (t *Timer) TotalTime() time.Duration { return t.now().Sub(t.start) }

// Ticks counts due ticks so far.
func (t *Timer) Ticks() uint64 { return t.ticks }
