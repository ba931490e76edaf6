// Package text rasterizes TrueType fonts into glyph atlases and lays strings
// out into positioned glyph quads for renderer2d.
package text

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphInfo holds the metrics of one rasterized rune, in atlas pixels.
type GlyphInfo struct {
	Advance  float32
	BearingX float32 // left bearing
	BearingY float32 // distance from baseline to glyph top
	W, H     int     // bitmap size; zero for blank glyphs
	Region   geom.Rect
}

// Font is a rasterized face: metrics, kerning and an atlas texture.
type Font struct {
	SizePx  float32
	Ascent  float32 // above the baseline
	Descent float32 // below the baseline, positive
	LineGap float32
	Glyphs  map[rune]GlyphInfo
	Kerning map[[2]rune]float32
	Texture gfx.Texture
	AtlasW  int
	AtlasH  int
}

// LineHeight is the baseline-to-baseline distance at the atlas size.
func (f *Font) LineHeight() float32 { return f.Ascent + f.Descent + f.LineGap }

func (f *Font) kern(a, b rune) float32 {
	if f.Kerning == nil {
		return 0
	}
	return f.Kerning[[2]rune{a, b}]
}

// TextureCreator uploads the atlas; gfx.Device satisfies it.
type TextureCreator interface {
	CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error)
}

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

// LoadTTF reads a TrueType/OpenType font from fsys and rasterizes it at sizePx.
func LoadTTF(tc TextureCreator, fsys fs.FS, name string, sizePx float32) (*Font, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errs.New(errs.ErrIO, "text.LoadTTF", fmt.Errorf("read font: %w", err))
	}
	return ParseTTF(tc, data, sizePx)
}

// ParseTTF builds a white glyph atlas (alpha coverage) for Latin-1 and
// uploads it as an RGBA texture.
func ParseTTF(tc TextureCreator, data []byte, sizePx float32) (*Font, error) {
	const op = "text.ParseTTF"
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, errs.New(errs.ErrIO, op, fmt.Errorf("parse font: %w", err))
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errs.New(errs.ErrInit, op, fmt.Errorf("new face: %w", err))
	}
	defer face.Close()

	m := face.Metrics()
	f := &Font{
		SizePx:  sizePx,
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(m.Descent.Round()),
		Glyphs:  make(map[rune]GlyphInfo),
		Kerning: make(map[[2]rune]float32),
	}
	f.LineGap = float32(m.Height.Round()) - f.Ascent - f.Descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for r := rune(32); r <= rune(255); r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   r,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	// Shelf packer; grow the square atlas until every glyph fits.
	size := atlasMinSize
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, errs.Errorf(errs.ErrResourceExhausted, op, "font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, g := range measure {
		info := GlyphInfo{Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			// The dot sits on the baseline, shifted left by the bearing.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			info.Region = geom.R(float32(p.X), float32(p.Y), float32(g.w), float32(g.h))
		}
		f.Glyphs[g.r] = info
	}
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				f.Kerning[[2]rune{a.r, b.r}] = float32(dx.Round())
			}
		}
	}

	tex, err := tc.CreateTexture(gfx.TextureDesc{
		Width: size, Height: size,
		Pixels:    dst.Pix,
		MinFilter: gfx.FilterLinear,
		MagFilter: gfx.FilterLinear,
	})
	if err != nil {
		return nil, errs.New(errs.ErrInit, op, err)
	}
	f.Texture = tex
	f.AtlasW, f.AtlasH = size, size
	return f, nil
}
