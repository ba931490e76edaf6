// Package glbackend implements gfx.Device on OpenGL 3.3 core.
// All calls must happen on the thread owning the GL context.
package glbackend

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/logx"
)

var _ gfx.Device = (*Device)(nil)

type Device struct {
	program uint32
	uProj   int32
	uTex    int32
	vao     uint32

	bound  [2]uint32 // by gfx.BufferKind
	target gfx.Target
	physW  int
	physH  int
	scale  float32
}

// New loads the GL entry points for the current context and builds the
// sprite program. physW/physH is the default framebuffer size.
func New(physW, physH int, scale float32) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	logx.Logger().Info("GL context", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	d := &Device{physW: physW, physH: physH, scale: scale}
	var err error
	if d.program, err = makeProgram(vertexSource, fragmentSource); err != nil {
		return nil, err
	}
	if d.uProj, err = uniform(d.program, "uProj"); err != nil {
		d.Release()
		return nil, err
	}
	if d.uTex, err = uniform(d.program, "uTex"); err != nil {
		d.Release()
		return nil, err
	}

	// Core profile draws need a bound VAO; the one VAO stays bound for the
	// lifetime of the device and records the index buffer binding.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	if err := d.BindTarget(gfx.Screen()); err != nil {
		d.Release()
		return nil, err
	}
	return d, nil
}

// Release deletes the program and the VAO.
func (d *Device) Release() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
}

// --- buffers ---

func bufferTarget(kind gfx.BufferKind) uint32 {
	if kind == gfx.IndexBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u gfx.BufferUsage) uint32 {
	switch u {
	case gfx.StaticDraw:
		return gl.STATIC_DRAW
	case gfx.DynamicDraw:
		return gl.DYNAMIC_DRAW
	}
	return gl.STREAM_DRAW
}

func (d *Device) CreateBuffer(gfx.BufferKind) (gfx.BufferID, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, errors.New("glGenBuffers returned no name")
	}
	return gfx.BufferID(id), nil
}

func (d *Device) DeleteBuffer(id gfx.BufferID) {
	raw := uint32(id)
	for k, b := range d.bound {
		if b == raw {
			d.bound[k] = 0
		}
	}
	gl.DeleteBuffers(1, &raw)
}

func (d *Device) BindBuffer(kind gfx.BufferKind, id gfx.BufferID) {
	gl.BindBuffer(bufferTarget(kind), uint32(id))
	d.bound[kind] = uint32(id)
}

func (d *Device) AllocBuffer(kind gfx.BufferKind, usage gfx.BufferUsage, bytes int) {
	gl.BufferData(bufferTarget(kind), bytes, nil, bufferUsage(usage))
}

func (d *Device) BufferSubData(kind gfx.BufferKind, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(bufferTarget(kind), offset, len(data), gl.Ptr(&data[0]))
}

// --- framebuffer ---

func (d *Device) Resize(physW, physH int, scale float32) {
	d.physW, d.physH, d.scale = physW, physH, scale
	if d.target.IsScreen() {
		d.apply(d.target)
	}
}

func (d *Device) LogicalSize() (float32, float32) {
	s := d.scale
	if s <= 0 {
		s = 1
	}
	return float32(d.physW) / s, float32(d.physH) / s
}

func (d *Device) BindTarget(t gfx.Target) error {
	if t.Canvas != nil {
		if _, ok := t.Canvas.(*Canvas); !ok {
			return fmt.Errorf("canvas %T was not created by the GL device", t.Canvas)
		}
	}
	d.apply(t)
	d.target = t
	return nil
}

func (d *Device) apply(t gfx.Target) {
	fbW, fbH, scale := d.physW, d.physH, d.scale
	fbo := uint32(0)
	if c, ok := t.Canvas.(*Canvas); ok {
		fbo = c.fbo
		fbW, fbH, scale = c.tex.w, c.tex.h, 1
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	l := targetLayout(t, fbW, fbH, scale)
	v := l.viewport
	gl.Viewport(v.X, v.Y, v.W, v.H)
	if l.scissor {
		gl.Enable(gl.SCISSOR_TEST)
		gl.Scissor(v.X, v.Y, v.W, v.H)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.UseProgram(d.program)
	gl.UniformMatrix4fv(d.uProj, 1, false, &l.proj[0])
	gl.Uniform1i(d.uTex, 0)
}

func (d *Device) BoundTarget() gfx.Target { return d.target }

func (d *Device) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// --- drawing ---

func glPrimitive(p gfx.Primitive) uint32 {
	switch p {
	case gfx.Lines:
		return gl.LINES
	case gfx.Points:
		return gl.POINTS
	}
	return gl.TRIANGLES
}

func (d *Device) DrawIndexed(p gfx.Primitive, count int) error {
	if d.bound[gfx.VertexBuffer] == 0 || d.bound[gfx.IndexBuffer] == 0 {
		return errors.New("draw without bound vertex and index buffers")
	}
	const stride = gfx.VertexStride * 4
	gl.UseProgram(d.program)
	gl.EnableVertexAttribArray(locPosition)
	gl.VertexAttribPointer(locPosition, gfx.AttribPositionSize, gl.FLOAT, false, stride, gl.PtrOffset(gfx.AttribPositionOffset*4))
	gl.EnableVertexAttribArray(locUV)
	gl.VertexAttribPointer(locUV, gfx.AttribUVSize, gl.FLOAT, false, stride, gl.PtrOffset(gfx.AttribUVOffset*4))
	gl.EnableVertexAttribArray(locColor)
	gl.VertexAttribPointer(locColor, gfx.AttribColorSize, gl.FLOAT, false, stride, gl.PtrOffset(gfx.AttribColorOffset*4))

	gl.DrawElements(glPrimitive(p), int32(count), gl.UNSIGNED_INT, gl.PtrOffset(0))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl draw %s: error 0x%x", p, code)
	}
	return nil
}
