package glbackend

import (
	"testing"

	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/stretchr/testify/assert"
)

func project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestScreenLayoutIsLogical(t *testing.T) {
	l := targetLayout(gfx.Screen(), 1600, 1200, 2)
	assert.Equal(t, pixelRect{0, 0, 1600, 1200}, l.viewport)
	assert.False(t, l.scissor)

	x, y := project(l.proj, 0, 0)
	assert.InDelta(t, -1, x, 1e-6, "logical origin is the top-left corner")
	assert.InDelta(t, 1, y, 1e-6)
	x, y = project(l.proj, 800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestClippedLayoutFlipsY(t *testing.T) {
	vp := geom.R(10, 20, 100, 50)
	l := targetLayout(gfx.Target{Clip: vp, Clipped: true}, 800, 600, 2)
	assert.Equal(t, pixelRect{20, 600 - 40 - 100, 200, 100}, l.viewport)
	assert.True(t, l.scissor)

	x, y := project(l.proj, 100, 50)
	assert.InDelta(t, 1, x, 1e-6, "clip-relative coordinates")
	assert.InDelta(t, -1, y, 1e-6)
}
