package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

type batchState uint8

const (
	batchEmpty batchState = iota
	batchAccumulating
)

// batchKey is everything two draws must share to land in one draw call.
// The transform is the stack top at submission time: vertices are baked with
// it, so a different top means a different batch.
type batchKey struct {
	target    gfx.Target
	primitive gfx.Primitive
	texture   gfx.Texture // nil samples the white texel
	transform geom.Transform
}

// batch accumulates baked vertices and indices between flushes.
type batch struct {
	state batchState
	key   batchKey
	verts []float32
	inds  []uint32
	quads int
}

func (b *batch) begin(k batchKey) {
	b.state = batchAccumulating
	b.key = k
}

func (b *batch) vertexCount() int { return len(b.verts) / gfx.VertexStride }

// accepts reports whether a draw with key k adding nv vertices and ni indices
// may join the current batch without exceeding the buffer limits.
func (b *batch) accepts(k batchKey, nv, ni, maxVerts, maxInds int) bool {
	return b.state == batchAccumulating &&
		b.key == k &&
		b.vertexCount()+nv <= maxVerts &&
		len(b.inds)+ni <= maxInds
}

// reset returns to empty. The slices keep their backing arrays for reuse.
func (b *batch) reset() {
	b.state = batchEmpty
	b.key = batchKey{}
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.quads = 0
}

func (b *batch) appendVertex(p, uv geom.Vec2, c [4]float32) {
	b.verts = append(b.verts, p.X, p.Y, uv.X, uv.Y, c[0], c[1], c[2], c[3])
}
