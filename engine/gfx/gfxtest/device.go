// Package gfxtest provides a recording gfx.Device for GPU-free tests.
package gfxtest

import (
	"fmt"
	"unsafe"

	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// Texture is a sized placeholder texture.
type Texture struct {
	Name    string
	W, H    int
	Flipped bool
}

func (t *Texture) Size() (int, int) { return t.W, t.H }
func (t *Texture) FlippedY() bool   { return t.Flipped }

type Canvas struct {
	W, H int
	tex  *Texture
}

func (c *Canvas) Size() (int, int)      { return c.W, c.H }
func (c *Canvas) Texture() gfx.Texture { return c.tex }

// Draw is one recorded DrawIndexed call with the data the device held at
// that moment.
type Draw struct {
	Primitive gfx.Primitive
	Count     int
	Target    gfx.Target
	Texture   gfx.Texture
	Vertices  []float32
	Indices   []uint32
}

type buffer struct {
	kind  gfx.BufferKind
	bytes []byte
}

// Device implements gfx.Device in memory.
type Device struct {
	Draws   []Draw
	Clears  []colors.Color
	Binds   []gfx.Target // every BindTarget call
	Allocs  map[gfx.BufferKind][]int
	Deleted []gfx.BufferID

	// FailCreateBuffer makes CreateBuffer return an error.
	FailCreateBuffer bool

	buffers map[gfx.BufferID]*buffer
	nextID  gfx.BufferID
	bound   map[gfx.BufferKind]gfx.BufferID
	target  gfx.Target
	texture gfx.Texture
	physW   int
	physH   int
	scale   float32
}

func NewDevice(w, h int) *Device {
	return &Device{
		Allocs:  make(map[gfx.BufferKind][]int),
		buffers: make(map[gfx.BufferID]*buffer),
		bound:   make(map[gfx.BufferKind]gfx.BufferID),
		physW:   w,
		physH:   h,
		scale:   1,
	}
}

func (d *Device) CreateBuffer(kind gfx.BufferKind) (gfx.BufferID, error) {
	if d.FailCreateBuffer {
		return 0, fmt.Errorf("gfxtest: create %s buffer failed", kind)
	}
	d.nextID++
	d.buffers[d.nextID] = &buffer{kind: kind}
	return d.nextID, nil
}

func (d *Device) DeleteBuffer(id gfx.BufferID) {
	delete(d.buffers, id)
	d.Deleted = append(d.Deleted, id)
}

func (d *Device) BindBuffer(kind gfx.BufferKind, id gfx.BufferID) { d.bound[kind] = id }

// BoundBuffer returns the buffer bound to kind, 0 if none.
func (d *Device) BoundBuffer(kind gfx.BufferKind) gfx.BufferID { return d.bound[kind] }

func (d *Device) AllocBuffer(kind gfx.BufferKind, _ gfx.BufferUsage, bytes int) {
	b := d.mustBound(kind)
	b.bytes = make([]byte, bytes)
	d.Allocs[kind] = append(d.Allocs[kind], bytes)
}

func (d *Device) BufferSubData(kind gfx.BufferKind, offset int, data []byte) {
	b := d.mustBound(kind)
	if offset+len(data) > len(b.bytes) {
		panic(fmt.Sprintf("gfxtest: %s sub-data [%d,%d) past allocation %d", kind, offset, offset+len(data), len(b.bytes)))
	}
	copy(b.bytes[offset:], data)
}

func (d *Device) mustBound(kind gfx.BufferKind) *buffer {
	b, ok := d.buffers[d.bound[kind]]
	if !ok {
		panic(fmt.Sprintf("gfxtest: no %s buffer bound", kind))
	}
	return b
}

func (d *Device) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	return &Texture{W: desc.Width, H: desc.Height}, nil
}

func (d *Device) DeleteTexture(gfx.Texture) {}

func (d *Device) CreateCanvas(w, h int) (gfx.Canvas, error) {
	return &Canvas{W: w, H: h, tex: &Texture{Name: "canvas", W: w, H: h, Flipped: true}}, nil
}

func (d *Device) DeleteCanvas(gfx.Canvas) {}

func (d *Device) Resize(w, h int, scale float32) { d.physW, d.physH, d.scale = w, h, scale }

func (d *Device) LogicalSize() (float32, float32) {
	return float32(d.physW) / d.scale, float32(d.physH) / d.scale
}

func (d *Device) BindTarget(t gfx.Target) error {
	d.target = t
	d.Binds = append(d.Binds, t)
	return nil
}

func (d *Device) BoundTarget() gfx.Target { return d.target }

func (d *Device) BindTexture(tex gfx.Texture) { d.texture = tex }

func (d *Device) Clear(c colors.Color) { d.Clears = append(d.Clears, c) }

func (d *Device) DrawIndexed(p gfx.Primitive, count int) error {
	vb := d.mustBound(gfx.VertexBuffer)
	ib := d.mustBound(gfx.IndexBuffer)
	inds := bytesTo[uint32](ib.bytes)[:count]
	maxIdx := uint32(0)
	for _, i := range inds {
		maxIdx = max(maxIdx, i)
	}
	const stride = 8
	verts := bytesTo[float32](vb.bytes)[:(int(maxIdx)+1)*stride]
	d.Draws = append(d.Draws, Draw{
		Primitive: p,
		Count:     count,
		Target:    d.target,
		Texture:   d.texture,
		Vertices:  append([]float32(nil), verts...),
		Indices:   append([]uint32(nil), inds...),
	})
	return nil
}

func bytesTo[T float32 | uint32](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/4)
}
