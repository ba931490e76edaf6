package glbackend

import (
	"github.com/chewxy/math32"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// pixelRect is a rectangle in framebuffer pixels with a bottom-left origin.
type pixelRect struct{ X, Y, W, H int32 }

// layout is everything BindTarget derives from a target.
type layout struct {
	viewport pixelRect
	scissor  bool
	proj     [16]float32
}

// targetLayout maps a target onto a framebuffer of fbW x fbH pixels at the
// given logical-to-pixel scale. Logical coordinates are Y-down with the
// origin at the top-left of the target or its clip rectangle.
func targetLayout(t gfx.Target, fbW, fbH int, scale float32) layout {
	if scale <= 0 {
		scale = 1
	}
	if !t.Clipped {
		return layout{
			viewport: pixelRect{0, 0, int32(fbW), int32(fbH)},
			proj:     ortho(0, float32(fbW)/scale, float32(fbH)/scale, 0),
		}
	}
	c := t.Clip.Scale(scale)
	x, y := math32.Round(c.X), math32.Round(c.Y)
	w, h := math32.Round(c.W), math32.Round(c.H)
	return layout{
		viewport: pixelRect{int32(x), int32(float32(fbH) - y - h), int32(w), int32(h)},
		scissor:  true,
		proj:     ortho(0, t.Clip.W, t.Clip.H, 0),
	}
}

// ortho is a column-major orthographic projection onto NDC.
func ortho(left, right, bottom, top float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -1, 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), 0, 1,
	}
}
