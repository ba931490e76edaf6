package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// Corner order for SpriteParams.Colors.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// SpriteParams describe one quad.
type SpriteParams struct {
	// Region is the source rectangle in texture pixels; a zero region is the
	// whole texture. Untextured sprites need a region: it is their size.
	Region geom.Rect
	// Origin is the local point placed at the transform's origin.
	Origin geom.Vec2
	// Colors per corner (TopLeft..BottomLeft); nil is opaque white.
	Colors *[4]colors.Color
}

// Tint builds a uniform corner color set.
func Tint(c colors.Color) *[4]colors.Color { return &[4]colors.Color{c, c, c, c} }

// Tinted returns a copy of p with every corner set to c.
func (p SpriteParams) Tinted(c colors.Color) SpriteParams {
	p.Colors = Tint(c)
	return p
}

// DrawSprite draws tex (nil for a flat colored quad) under the current
// transform composed with local.
func (r *Renderer2D) DrawSprite(tex gfx.Texture, p SpriteParams, local geom.Transform) error {
	region := p.Region
	if region.Empty() {
		if tex == nil {
			return nil
		}
		w, h := tex.Size()
		region = geom.R(0, 0, float32(w), float32(h))
	}
	cols := [4]colors.Color{colors.White, colors.White, colors.White, colors.White}
	if p.Colors != nil {
		cols = *p.Colors
	}

	k := batchKey{target: r.Target(), primitive: gfx.Triangles, texture: tex, transform: r.Transform()}
	if err := r.prepare(k, vertsPerQuad, indsPerQuad); err != nil {
		return err
	}
	r.emitQuad(k.transform.Mul(local), tex, region, p.Origin, cols)
	return nil
}

// emitQuad bakes one quad of the source region into the batch.
func (r *Renderer2D) emitQuad(m geom.Transform, tex gfx.Texture, region geom.Rect, origin geom.Vec2, cols [4]colors.Color) {
	x0, y0 := -origin.X, -origin.Y
	x1, y1 := region.W-origin.X, region.H-origin.Y
	pos := [4]geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}

	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	if tex != nil {
		tw, th := tex.Size()
		u0, v0 = region.X/float32(tw), region.Y/float32(th)
		u1, v1 = (region.X+region.W)/float32(tw), (region.Y+region.H)/float32(th)
		if flipped(tex) {
			v0, v1 = 1-v0, 1-v1
		}
	}
	uvs := [4]geom.Vec2{{X: u0, Y: v0}, {X: u1, Y: v0}, {X: u1, Y: v1}, {X: u0, Y: v1}}

	b := &r.batch
	base := uint32(b.vertexCount())
	for i := range pos {
		b.appendVertex(m.Apply(pos[i]), uvs[i], cols[i])
	}
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
	b.quads++
	r.stats.QuadCount++
}

func flipped(tex gfx.Texture) bool {
	f, ok := tex.(gfx.FlippedTexture)
	return ok && f.FlippedY()
}
