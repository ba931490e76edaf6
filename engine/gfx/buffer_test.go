package gfx_test

import (
	"testing"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferGrowsGeometrically(t *testing.T) {
	dev := gfxtest.NewDevice(64, 64)
	buf, err := gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw, 4, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, []int{16}, dev.Allocs[gfx.VertexBuffer])

	buf.Bind()
	require.NoError(t, buf.Upload(make([]float32, 3)))
	assert.Equal(t, 4, buf.Cap(), "fits, sub-update only")

	require.NoError(t, buf.Upload(make([]float32, 5)))
	assert.Equal(t, 8, buf.Cap())

	require.NoError(t, buf.Upload(make([]float32, 100)))
	assert.Equal(t, 100, buf.Cap(), "jumps straight to the requested size")

	require.NoError(t, buf.Upload(make([]float32, 2)))
	assert.Equal(t, 100, buf.Cap(), "never shrinks")
	assert.Equal(t, []int{16, 32, 400}, dev.Allocs[gfx.VertexBuffer])
}

func TestBufferGrowthClampedToLimit(t *testing.T) {
	dev := gfxtest.NewDevice(64, 64)
	buf, err := gfx.NewBuffer[uint32](dev, gfx.IndexBuffer, gfx.StreamDraw, 6, 40)
	require.NoError(t, err)
	assert.Equal(t, 10, buf.Limit())
	buf.Bind()

	require.NoError(t, buf.Upload(make([]uint32, 7)))
	assert.Equal(t, 10, buf.Cap())

	err = buf.Upload(make([]uint32, 11))
	assert.ErrorIs(t, err, errs.ErrResourceExhausted)
	assert.Equal(t, 10, buf.Cap())
}

func TestBufferUploadRequiresBind(t *testing.T) {
	dev := gfxtest.NewDevice(64, 64)
	buf, err := gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw, 4, 64)
	require.NoError(t, err)
	assert.False(t, buf.Bound())
	assert.ErrorIs(t, buf.Upload([]float32{1}), errs.ErrState)
}

func TestBufferReleaseOnce(t *testing.T) {
	dev := gfxtest.NewDevice(64, 64)
	buf, err := gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw, 4, 64)
	require.NoError(t, err)
	buf.Bind()
	id := buf.ID()

	buf.Release()
	buf.Release()
	assert.Equal(t, []gfx.BufferID{id}, dev.Deleted)
	assert.True(t, buf.Released())
	assert.Zero(t, dev.BoundBuffer(gfx.VertexBuffer))
	assert.ErrorIs(t, buf.Reserve(100), errs.ErrState)
}

func TestNewBufferErrors(t *testing.T) {
	dev := gfxtest.NewDevice(64, 64)
	_, err := gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw, 100, 64)
	assert.ErrorIs(t, err, errs.ErrInit)

	dev.FailCreateBuffer = true
	_, err = gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw, 4, 64)
	assert.ErrorIs(t, err, errs.ErrInit)
}
