package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadImageTopRowFirst(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	fsys := fstest.MapFS{"tiles.png": {Data: encodePNG(t, img)}}

	desc, err := LoadImage(fsys, "tiles.png")
	require.NoError(t, err)
	assert.Equal(t, 2, desc.Width)
	assert.Equal(t, 2, desc.Height)
	assert.Equal(t, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}, desc.Pixels)
}

func TestImageToRGBARebasesSubImage(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	full.Set(2, 1, color.RGBA{9, 8, 7, 255})
	sub := full.SubImage(image.Rect(2, 1, 4, 3))

	m := imageToRGBA(sub)
	assert.Equal(t, 8, m.Stride)
	assert.Equal(t, []byte{9, 8, 7, 255}, m.Pix[:4])
}

func TestLoadImageErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not an image")}}

	_, err := LoadImage(fsys, "missing.png")
	assert.ErrorIs(t, err, errs.ErrIO)

	_, err = LoadImage(fsys, "bad.png")
	assert.ErrorIs(t, err, errs.ErrIO)
}

func TestLoadTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	fsys := fstest.MapFS{"a.png": {Data: encodePNG(t, img)}}
	dev := gfxtest.NewDevice(100, 100)

	tex, err := LoadTexture(dev, fsys, "a.png", gfx.FilterNearest)
	require.NoError(t, err)
	w, h := tex.Size()
	assert.Equal(t, [2]int{3, 1}, [2]int{w, h})
}
