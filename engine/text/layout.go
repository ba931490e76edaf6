package text

import (
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
)

type HorizontalGravity uint8

const (
	AlignStart HorizontalGravity = iota
	AlignCenter
	AlignEnd
)

type VerticalGravity uint8

const (
	AlignTop VerticalGravity = iota
	AlignMiddle
	AlignBottom
)

// Params configure a layout. Zero values mean the font's own metrics and no
// wrap box.
type Params struct {
	Size        float32 // pixel size; 0 is the atlas size
	CharSpacing float32 // extra advance after every glyph
	LineHeight  float32 // 0 is the scaled font line height
	LineSpacing float32 // extra gap between lines

	// WrapWidth breaks lines that would overflow it; WrapHeight drops lines
	// that would. Both also form the box the gravities align in.
	WrapWidth  float32
	WrapHeight float32

	Horizontal HorizontalGravity
	Vertical   VerticalGravity
}

type line struct {
	glyphs []renderer2d.Glyph
	width  float32
}

// Layout positions the visible glyphs of s with the box origin at (0,0),
// Y down.
func Layout(f *Font, s string, p Params) []renderer2d.Glyph {
	lines, lineH := breakLines(f, s, p)
	n := len(lines)
	if n == 0 {
		return nil
	}
	total := float32(n)*lineH + float32(n-1)*p.LineSpacing

	boxW := p.WrapWidth
	if boxW <= 0 {
		for _, l := range lines {
			boxW = max(boxW, l.width)
		}
	}
	boxH := total
	if p.WrapHeight > 0 {
		boxH = p.WrapHeight
	}
	var offY float32
	switch p.Vertical {
	case AlignMiddle:
		offY = (boxH - total) / 2
	case AlignBottom:
		offY = boxH - total
	}

	var out []renderer2d.Glyph
	for i, l := range lines {
		var offX float32
		switch p.Horizontal {
		case AlignCenter:
			offX = (boxW - l.width) / 2
		case AlignEnd:
			offX = boxW - l.width
		}
		y := offY + float32(i)*(lineH+p.LineSpacing)
		for _, g := range l.glyphs {
			g.Dst.X += offX
			g.Dst.Y += y
			out = append(out, g)
		}
	}
	return out
}

// Measure returns the size of the laid-out text block.
func Measure(f *Font, s string, p Params) geom.Vec2 {
	lines, lineH := breakLines(f, s, p)
	n := len(lines)
	if n == 0 {
		return geom.Vec2{}
	}
	var w float32
	for _, l := range lines {
		w = max(w, l.width)
	}
	return geom.V(w, float32(n)*lineH+float32(n-1)*p.LineSpacing)
}

// breakLines splits s at newlines and at the wrap width, placing glyphs
// relative to their line's top-left corner.
func breakLines(f *Font, s string, p Params) ([]line, float32) {
	scale := float32(1)
	if p.Size > 0 && f.SizePx > 0 {
		scale = p.Size / f.SizePx
	}
	lineH := p.LineHeight
	if lineH <= 0 {
		lineH = f.LineHeight() * scale
	}
	baseline := f.Ascent * scale

	var (
		lines []line
		cur   line
		pen   float32
		prev  rune = -1
	)
	newLine := func() {
		cur.width = max(pen-p.CharSpacing, 0)
		lines = append(lines, cur)
		cur, pen, prev = line{}, 0, -1
	}
	// fits reports whether the line being built still fits the wrap height.
	fits := func() bool {
		if p.WrapHeight <= 0 {
			return true
		}
		n := float32(len(lines) + 1)
		return n*lineH+(n-1)*p.LineSpacing <= p.WrapHeight
	}

	for _, r := range s {
		if r == '\n' {
			if !fits() {
				return lines, lineH
			}
			newLine()
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			g, ok = f.Glyphs[' ']
			if !ok {
				continue
			}
		}
		if prev >= 0 {
			pen += f.kern(prev, r) * scale
		}
		adv := g.Advance * scale
		if p.WrapWidth > 0 && pen > 0 && pen+adv > p.WrapWidth {
			if !fits() {
				return lines, lineH
			}
			newLine()
		}
		if g.W > 0 && g.H > 0 {
			cur.glyphs = append(cur.glyphs, renderer2d.Glyph{
				Rune: r,
				Src:  g.Region,
				Dst:  geom.R(pen+g.BearingX*scale, baseline-g.BearingY*scale, float32(g.W)*scale, float32(g.H)*scale),
			})
		}
		pen += adv + p.CharSpacing
		prev = r
	}
	if fits() {
		newLine()
	}
	return lines, lineH
}

// Draw lays s out and draws it with color c under local.
func Draw(r *renderer2d.Renderer2D, f *Font, s string, p Params, c colors.Color, local geom.Transform) error {
	return r.DrawGlyphs(f.Texture, Layout(f, s, p), c, local)
}
