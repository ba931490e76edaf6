// Package renderer2d turns sprite, mesh and glyph draws into batched indexed
// draw calls. Positions are transformed on the CPU; consecutive draws that
// share target, primitive, texture and transform become one draw call.
package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/logx"
)

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls   int
	QuadCount   int
	MeshCount   int
	VertexCount int
	IndexCount  int
}

// Options size the owned GPU buffers.
type Options struct {
	InitialVertices int // vertex buffer capacity at creation
	MaxBufferBytes  int // growth bound for each buffer
}

type Renderer2D struct {
	dev   gfx.Device
	vbuf  *gfx.Buffer[float32]
	ibuf  *gfx.Buffer[uint32]
	white gfx.Texture // 1x1 opaque texel for untextured draws

	transforms []geom.Transform
	targets    []gfx.Target

	batch    batch
	maxVerts int
	maxInds  int
	stats    Statistics
}

// New creates the buffers and the white texture on dev.
func New(dev gfx.Device, opts Options) (*Renderer2D, error) {
	const op = "renderer2d.New"
	if opts.InitialVertices <= 0 {
		opts.InitialVertices = 4096
	}
	if opts.MaxBufferBytes <= 0 {
		opts.MaxBufferBytes = 64 << 20
	}

	vbuf, err := gfx.NewBuffer[float32](dev, gfx.VertexBuffer, gfx.StreamDraw,
		opts.InitialVertices*gfx.VertexStride, opts.MaxBufferBytes)
	if err != nil {
		return nil, err
	}
	ibuf, err := gfx.NewBuffer[uint32](dev, gfx.IndexBuffer, gfx.StreamDraw,
		opts.InitialVertices*indsPerQuad/vertsPerQuad, opts.MaxBufferBytes)
	if err != nil {
		vbuf.Release()
		return nil, err
	}
	white, err := dev.CreateTexture(gfx.TextureDesc{
		Width: 1, Height: 1,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: gfx.FilterNearest, MagFilter: gfx.FilterNearest,
	})
	if err != nil {
		vbuf.Release()
		ibuf.Release()
		return nil, errs.New(errs.ErrInit, op, err)
	}

	r := &Renderer2D{
		dev:      dev,
		vbuf:     vbuf,
		ibuf:     ibuf,
		white:    white,
		maxVerts: vbuf.Limit() / gfx.VertexStride,
		maxInds:  ibuf.Limit(),
	}
	r.resetStacks()
	return r, nil
}

// Release frees the GPU resources. The renderer is unusable afterwards.
func (r *Renderer2D) Release() {
	r.batch.reset()
	r.vbuf.Release()
	r.ibuf.Release()
	if r.white != nil {
		r.dev.DeleteTexture(r.white)
		r.white = nil
	}
}

// Device returns the backend the renderer draws with.
func (r *Renderer2D) Device() gfx.Device { return r.dev }

// Stats returns the counts of the current frame so far.
func (r *Renderer2D) Stats() Statistics { return r.stats }

// BeginFrame resets statistics and both stacks, and binds the screen. Draws
// submitted since the last EndFrame are flushed to their own target first and
// counted in the new frame.
func (r *Renderer2D) BeginFrame() error {
	r.stats = Statistics{}
	log := logx.Logger()
	if r.batch.state == batchAccumulating {
		log.Warn("draws submitted outside a frame", "indices", len(r.batch.inds))
		if err := r.flush("begin frame"); err != nil {
			return err
		}
	}
	if len(r.transforms) > 1 || len(r.targets) > 1 {
		log.Warn("unbalanced stacks at frame start",
			"transforms", len(r.transforms)-1, "targets", len(r.targets)-1)
	}
	r.resetStacks()
	return r.bind(gfx.Screen())
}

// EndFrame flushes whatever is pending. Called after the render callback.
func (r *Renderer2D) EndFrame() error { return r.flush("end of frame") }

// Flush submits the pending batch now.
func (r *Renderer2D) Flush() error { return r.flush("explicit") }

// Resize forwards the new default framebuffer size to the device.
func (r *Renderer2D) Resize(physW, physH int, scale float32) {
	r.dev.Resize(physW, physH, scale)
}

// Clear fills the current target (or its viewport) with c.
func (r *Renderer2D) Clear(c colors.Color) error {
	if err := r.flush("clear"); err != nil {
		return err
	}
	if err := r.bind(r.Target()); err != nil {
		return err
	}
	r.dev.Clear(c)
	return nil
}

// NewTexture uploads an RGBA8 texture.
func (r *Renderer2D) NewTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	tex, err := r.dev.CreateTexture(desc)
	if err != nil {
		return nil, errs.New(errs.ErrInit, "renderer2d.NewTexture", err)
	}
	return tex, nil
}

// NewCanvas creates an offscreen target of w x h pixels.
func (r *Renderer2D) NewCanvas(w, h int) (gfx.Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, errs.State("renderer2d.NewCanvas", "canvas size %dx%d must be positive", w, h)
	}
	c, err := r.dev.CreateCanvas(w, h)
	if err != nil {
		return nil, errs.New(errs.ErrInit, "renderer2d.NewCanvas", err)
	}
	return c, nil
}

func (r *Renderer2D) bind(t gfx.Target) error {
	if r.dev.BoundTarget() == t {
		return nil
	}
	return r.dev.BindTarget(t)
}

// prepare makes the batch ready to take nv vertices and ni indices under
// key k, flushing first when the pending batch is incompatible or full.
func (r *Renderer2D) prepare(k batchKey, nv, ni int) error {
	if nv > r.maxVerts || ni > r.maxInds {
		return errs.Errorf(errs.ErrResourceExhausted, "renderer2d.draw",
			"draw of %d vertices / %d indices exceeds buffer limit %d / %d", nv, ni, r.maxVerts, r.maxInds)
	}
	if r.batch.accepts(k, nv, ni, r.maxVerts, r.maxInds) {
		return nil
	}
	if err := r.flush("incompatible draw"); err != nil {
		return err
	}
	r.batch.begin(k)
	return nil
}

// flush uploads the pending batch and issues one draw call. A flushed batch
// is never touched again; the batch returns to empty.
func (r *Renderer2D) flush(reason string) error {
	const op = "renderer2d.flush"
	if r.batch.state == batchEmpty || len(r.batch.inds) == 0 {
		r.batch.reset()
		return nil
	}
	b := &r.batch
	if err := r.bind(b.key.target); err != nil {
		return err
	}
	if r.dev.BoundTarget() != b.key.target {
		return errs.State(op, "batch target is not the bound render target")
	}

	r.vbuf.Bind()
	r.ibuf.Bind()
	defer r.vbuf.Unbind()
	defer r.ibuf.Unbind()
	if err := r.vbuf.Upload(b.verts); err != nil {
		return err
	}
	if err := r.ibuf.Upload(b.inds); err != nil {
		return err
	}
	tex := b.key.texture
	if tex == nil {
		tex = r.white
	}
	r.dev.BindTexture(tex)
	if err := r.dev.DrawIndexed(b.key.primitive, len(b.inds)); err != nil {
		return errs.New(errs.ErrRuntime, op, err)
	}

	logx.Logger().Debug("flush batch", "reason", reason, "primitive", b.key.primitive,
		"vertices", b.vertexCount(), "indices", len(b.inds))
	r.stats.DrawCalls++
	r.stats.VertexCount += b.vertexCount()
	r.stats.IndexCount += len(b.inds)
	b.reset()
	return nil
}
