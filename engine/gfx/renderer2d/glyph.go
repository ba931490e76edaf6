package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// Glyph is one positioned quad from a text layout: Src is the region in the
// atlas texture, Dst the quad in text-local coordinates.
type Glyph struct {
	Rune rune
	Src  geom.Rect
	Dst  geom.Rect
}

// DrawGlyphs draws an already laid-out glyph run from atlas. Glyphs with an
// empty destination (spaces) are skipped. The run may span several batches
// if it does not fit in the remaining buffer space.
func (r *Renderer2D) DrawGlyphs(atlas gfx.Texture, glyphs []Glyph, c colors.Color, local geom.Transform) error {
	cols := [4]colors.Color{c, c, c, c}
	k := batchKey{target: r.Target(), primitive: gfx.Triangles, texture: atlas, transform: r.Transform()}
	m := k.transform.Mul(local)
	for _, g := range glyphs {
		if g.Dst.Empty() || g.Src.Empty() {
			continue
		}
		if err := r.prepare(k, vertsPerQuad, indsPerQuad); err != nil {
			return err
		}
		// Scale the source region to the destination size and place it.
		sx, sy := g.Dst.W/g.Src.W, g.Dst.H/g.Src.H
		gm := m.Mul(geom.Identity().Scale(sx, sy).Translate(g.Dst.X, g.Dst.Y))
		r.emitQuad(gm, atlas, g.Src, geom.Vec2{}, cols)
	}
	return nil
}
