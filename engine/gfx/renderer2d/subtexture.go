package renderer2d

import (
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
)

// SubTexture is a pixel region of an atlas texture.
type SubTexture struct {
	Texture gfx.Texture
	Region  geom.Rect
}

// FromPixels builds a subtexture from pixel coordinates within an atlas.
func FromPixels(tex gfx.Texture, x, y, w, h int) SubTexture {
	return SubTexture{Texture: tex, Region: geom.R(float32(x), float32(y), float32(w), float32(h))}
}

// FromGrid builds a subtexture from tile grid coordinates (cx,cy) of cell size (cw,ch).
func FromGrid(tex gfx.Texture, cx, cy, cw, ch int) SubTexture {
	return FromPixels(tex, cx*cw, cy*ch, cw, ch)
}

// UV returns the normalized texture coordinates of the region.
func (s SubTexture) UV() (u0, v0, u1, v1 float32) {
	w, h := s.Texture.Size()
	fw, fh := float32(w), float32(h)
	return s.Region.X / fw, s.Region.Y / fh, (s.Region.X + s.Region.W) / fw, (s.Region.Y + s.Region.H) / fh
}

// DrawSubTexture draws s with the params' origin and colors; p.Region is
// replaced by the subtexture region.
func (r *Renderer2D) DrawSubTexture(s SubTexture, p SpriteParams, local geom.Transform) error {
	p.Region = s.Region
	return r.DrawSprite(s.Texture, p, local)
}
