package glbackend

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// Texture is an RGBA8 GL texture.
type Texture struct {
	id      uint32
	w, h    int
	flipped bool
}

func (t *Texture) Size() (int, int) { return t.w, t.h }
func (t *Texture) FlippedY() bool   { return t.flipped }
func (t *Texture) ID() uint32       { return t.id }

// Canvas renders into a texture through a framebuffer object.
type Canvas struct {
	fbo uint32
	tex *Texture
}

func (c *Canvas) Size() (int, int)      { return c.tex.w, c.tex.h }
func (c *Canvas) Texture() gfx.Texture { return c.tex }

func glFilter(f gfx.Filter) int32 {
	if f == gfx.FilterNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func glWrap(w gfx.Wrap) int32 {
	switch w {
	case gfx.WrapRepeat:
		return gl.REPEAT
	case gfx.WrapMirror:
		return gl.MIRRORED_REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func (d *Device) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	return d.createTexture(desc)
}

func (d *Device) createTexture(desc gfx.TextureDesc) (*Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d must be positive", desc.Width, desc.Height)
	}
	if desc.Pixels != nil && len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d",
			desc.Width, desc.Height, desc.Width*desc.Height*4, len(desc.Pixels))
	}
	t := &Texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, errors.New("glGenTextures returned no name")
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(desc.WrapV))

	var pix unsafe.Pointer
	if len(desc.Pixels) > 0 {
		pix = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, pix)
	return t, nil
}

func (d *Device) DeleteTexture(tex gfx.Texture) {
	t, ok := tex.(*Texture)
	if !ok || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}

func (d *Device) BindTexture(tex gfx.Texture) {
	var id uint32
	if t, ok := tex.(*Texture); ok {
		id = t.id
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (d *Device) CreateCanvas(w, h int) (gfx.Canvas, error) {
	tex, err := d.createTexture(gfx.TextureDesc{Width: w, Height: h})
	if err != nil {
		return nil, err
	}
	tex.flipped = true

	c := &Canvas{tex: tex}
	gl.GenFramebuffers(1, &c.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex.id, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)

	// Restore whatever target was bound before.
	d.apply(d.target)
	if status != gl.FRAMEBUFFER_COMPLETE {
		d.DeleteCanvas(c)
		return nil, fmt.Errorf("canvas %dx%d framebuffer incomplete: 0x%x", w, h, status)
	}
	return c, nil
}

func (d *Device) DeleteCanvas(canvas gfx.Canvas) {
	c, ok := canvas.(*Canvas)
	if !ok {
		return
	}
	if c.fbo != 0 {
		gl.DeleteFramebuffers(1, &c.fbo)
		c.fbo = 0
	}
	d.DeleteTexture(c.tex)
}
