package timer

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time             { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTimer(t *testing.T, fps float64) (*Timer, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	tm, err := New(config.Timer{FPS: fps, MaxLag: 10}, WithClock(clk.now))
	require.NoError(t, err)
	tm.ResetTick()
	return tm, clk
}

func TestSixtyHzScenario(t *testing.T) {
	tm, clk := newTimer(t, 60)
	due := 0
	for i := 0; i < 180; i++ {
		clk.advance(16667 * time.Microsecond)
		if tm.TickDue() {
			due++
			assert.InDelta(t, 1.0/60, tm.DeltaTime().Seconds(), 1e-6)
		}
	}
	assert.Equal(t, 180, due)
	assert.Equal(t, uint64(180), tm.Ticks())
	assert.Equal(t, 180*16667*time.Microsecond, tm.TotalTime())
}

func TestNotDueBeforeInterval(t *testing.T) {
	tm, clk := newTimer(t, 60)
	clk.advance(10 * time.Millisecond)
	assert.False(t, tm.TickDue())
	clk.advance(7 * time.Millisecond)
	assert.True(t, tm.TickDue(), "remainder of the first poll is kept")
}

func TestDriftBound(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		poll func(r *rand.Rand) time.Duration
	}{
		{"240Hz polls", 60, func(*rand.Rand) time.Duration { return time.Second / 240 }},
		{"jittered polls", 60, func(r *rand.Rand) time.Duration {
			return time.Duration(1+r.IntN(8)) * time.Millisecond
		}},
		{"close to rate", 30, func(r *rand.Rand) time.Duration {
			return time.Duration(30+r.IntN(6)) * time.Millisecond
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, clk := newTimer(t, tt.fps)
			r := rand.New(rand.NewPCG(1, 2))
			var wall time.Duration
			due := 0
			for wall < 20*time.Second {
				d := tt.poll(r)
				wall += d
				clk.advance(d)
				if tm.TickDue() {
					due++
				}
			}
			want := wall.Seconds() * tt.fps
			assert.InDelta(t, want, float64(due), 1)
		})
	}
}

func TestUncapped(t *testing.T) {
	tm, clk := newTimer(t, 0)
	for _, d := range []time.Duration{time.Millisecond, 3 * time.Millisecond, 0} {
		clk.advance(d)
		assert.True(t, tm.TickDue())
		assert.Equal(t, d, tm.DeltaTime())
	}
}

func TestResetTickAvoidsSpike(t *testing.T) {
	tm, clk := newTimer(t, 60)
	clk.advance(5 * time.Second) // loading assets
	tm.ResetTick()
	clk.advance(time.Millisecond)
	assert.False(t, tm.TickDue())
}

func TestStallIsClamped(t *testing.T) {
	tm, clk := newTimer(t, 100)
	clk.advance(time.Minute)
	due := 0
	for tm.TickDue() {
		due++
	}
	assert.Equal(t, 10, due, "at most max_lag ticks are caught up")
}

func TestRealTimeFPSIsIndependent(t *testing.T) {
	tm, clk := newTimer(t, 60)
	for i := 0; i < 500; i++ {
		clk.advance(time.Second / 200)
		tm.TickDue()
	}
	assert.InDelta(t, 200, tm.RealTimeFPS(), 1)
	assert.Equal(t, time.Second/60, tm.DeltaTime())
}

func TestInvalidFPS(t *testing.T) {
	_, err := New(config.Timer{FPS: -5, MaxLag: 1})
	assert.ErrorIs(t, err, errs.ErrInit)
}
