package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// MeshPrimitive is the topology of a MeshParams vertex run.
type MeshPrimitive uint8

const (
	MeshTriangles MeshPrimitive = iota
	MeshTriangleStrip
	MeshTriangleFan
	MeshLines
	MeshLineStrip
	MeshLineLoop
	MeshPoints
)

// Vertex is one mesh vertex in local space. UV is normalized.
type Vertex struct {
	Position geom.Vec2
	UV       geom.Vec2
	Color    colors.Color
}

// MeshParams is an arbitrary vertex run. Indices are optional; without them
// the vertices are taken in order.
type MeshParams struct {
	Primitive MeshPrimitive
	Vertices  []Vertex
	Indices   []uint32
}

// listPrimitive maps strip, fan and loop topologies to their list form.
func (p MeshPrimitive) listPrimitive() gfx.Primitive {
	switch p {
	case MeshLines, MeshLineStrip, MeshLineLoop:
		return gfx.Lines
	case MeshPoints:
		return gfx.Points
	}
	return gfx.Triangles
}

// listIndices expands an ordered index sequence into a list topology.
// Trailing indices that do not form a whole primitive are dropped.
func listIndices(p MeshPrimitive, seq []uint32) []uint32 {
	var out []uint32
	switch p {
	case MeshTriangles:
		n := len(seq) / 3 * 3
		out = append(out, seq[:n]...)
	case MeshTriangleStrip:
		for i := 2; i < len(seq); i++ {
			if i%2 == 0 {
				out = append(out, seq[i-2], seq[i-1], seq[i])
			} else {
				out = append(out, seq[i-1], seq[i-2], seq[i])
			}
		}
	case MeshTriangleFan:
		for i := 2; i < len(seq); i++ {
			out = append(out, seq[0], seq[i-1], seq[i])
		}
	case MeshLines:
		n := len(seq) / 2 * 2
		out = append(out, seq[:n]...)
	case MeshLineStrip, MeshLineLoop:
		for i := 1; i < len(seq); i++ {
			out = append(out, seq[i-1], seq[i])
		}
		if p == MeshLineLoop && len(seq) > 2 {
			out = append(out, seq[len(seq)-1], seq[0])
		}
	case MeshPoints:
		out = append(out, seq...)
	}
	return out
}

// DrawMesh draws a vertex run textured with tex (nil for vertex colors only)
// under the current transform composed with local.
func (r *Renderer2D) DrawMesh(tex gfx.Texture, p MeshParams, local geom.Transform) error {
	const op = "renderer2d.DrawMesh"
	if p.Primitive > MeshPoints {
		return errs.State(op, "unknown mesh primitive %d", p.Primitive)
	}
	seq := p.Indices
	if seq == nil {
		seq = make([]uint32, len(p.Vertices))
		for i := range seq {
			seq[i] = uint32(i)
		}
	}
	for _, i := range seq {
		if int(i) >= len(p.Vertices) {
			return errs.State(op, "index %d out of range for %d vertices", i, len(p.Vertices))
		}
	}
	inds := listIndices(p.Primitive, seq)
	if len(inds) == 0 {
		return nil
	}

	k := batchKey{target: r.Target(), primitive: p.Primitive.listPrimitive(), texture: tex, transform: r.Transform()}
	if err := r.prepare(k, len(p.Vertices), len(inds)); err != nil {
		return err
	}
	m := k.transform.Mul(local)
	flip := tex != nil && flipped(tex)
	b := &r.batch
	base := uint32(b.vertexCount())
	for _, v := range p.Vertices {
		uv := v.UV
		if flip {
			uv.Y = 1 - uv.Y
		}
		b.appendVertex(m.Apply(v.Position), uv, v.Color)
	}
	for _, i := range inds {
		b.inds = append(b.inds, base+i)
	}
	r.stats.MeshCount++
	return nil
}
