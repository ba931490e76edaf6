// Package gfx is the contract between the 2D pipeline and a GPU backend:
// owned buffers, textures, render targets and one indexed draw call.
package gfx

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/geom"
)

// Primitive is the topology of a draw call. Backends only ever receive list
// topologies; strips, fans and loops are expanded on the CPU.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	}
	return "invalid"
}

// Texture is a sampled image owned by the device.
type Texture interface {
	Size() (w, h int)
}

// FlippedTexture is implemented by textures whose rows are stored bottom-up
// (render-to-texture results on OpenGL).
type FlippedTexture interface {
	FlippedY() bool
}

// Canvas is an offscreen render destination of fixed pixel size.
type Canvas interface {
	Size() (w, h int)
	Texture() Texture
}

// Target is where draws land: the default framebuffer, optionally clipped to
// a logical viewport rectangle, or an offscreen canvas. Targets are compared
// by value to decide batch compatibility.
type Target struct {
	Canvas  Canvas
	Clip    geom.Rect
	Clipped bool
}

// Screen is the default framebuffer without a clip.
func Screen() Target { return Target{} }

func (t Target) IsScreen() bool { return t.Canvas == nil }

type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

type Wrap uint8

const (
	WrapClamp Wrap = iota
	WrapRepeat
	WrapMirror
)

// TextureDesc describes an RGBA8 texture upload.
type TextureDesc struct {
	Width, Height int
	Pixels        []byte // tightly packed RGBA8, top row first; nil allocates
	MinFilter     Filter
	MagFilter     Filter
	WrapU, WrapV  Wrap
}

// Device is a single immediate-mode GPU context.
type Device interface {
	BufferBackend

	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(tex Texture)
	CreateCanvas(w, h int) (Canvas, error)
	DeleteCanvas(c Canvas)

	// Resize informs the device of the default framebuffer's physical size
	// and the logical-to-physical scale factor.
	Resize(physW, physH int, scale float32)
	// LogicalSize of the default framebuffer.
	LogicalSize() (w, h float32)

	// BindTarget makes t current: framebuffer, viewport and projection.
	BindTarget(t Target) error
	BoundTarget() Target
	// BindTexture selects the texture sampled by the next draw.
	BindTexture(tex Texture)
	// Clear fills the bound target (or its clip rectangle) with c.
	Clear(c colors.Color)
	// DrawIndexed draws count indices from the bound index buffer.
	DrawIndexed(p Primitive, count int) error
}
