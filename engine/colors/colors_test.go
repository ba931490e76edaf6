package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0, 0.25}, Red.WithAlpha(0.25))
	assert.Equal(t, Color{1, 0, 0, 1}, Red, "receiver is a value")
}

func TestRGBA8(t *testing.T) {
	assert.Equal(t, White, RGBA8(255, 255, 255, 255))
	assert.Equal(t, Transparent, RGBA8(0, 0, 0, 0))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Black, Black.Lerp(White, -1))
	assert.Equal(t, White, Black.Lerp(White, 2))
	assert.InDelta(t, 0.5, Black.Lerp(White, 0.5)[0], 1e-6)
}
