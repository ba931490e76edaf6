// Package assets decodes images from an fs.FS into texture uploads.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/hubastard/grove/v2/engine/gfx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG, BMP or WebP file into a tightly packed
// RGBA8 texture description (row-major, top-left origin).
func LoadImage(fsys fs.FS, name string) (gfx.TextureDesc, error) {
	const op = "assets.LoadImage"
	f, err := fsys.Open(name)
	if err != nil {
		return gfx.TextureDesc{}, errs.New(errs.ErrIO, op, fmt.Errorf("open %q: %w", name, err))
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return gfx.TextureDesc{}, errs.New(errs.ErrIO, op, fmt.Errorf("decode %q: %w", name, err))
	}
	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()

	// Repack in tight rows (stride == 4*w).
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	return gfx.TextureDesc{Width: w, Height: h, Pixels: out}, nil
}

// TextureCreator is the part of gfx.Device LoadTexture needs.
type TextureCreator interface {
	CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error)
}

// LoadTexture decodes name and uploads it with the given filter.
func LoadTexture(tc TextureCreator, fsys fs.FS, name string, filter gfx.Filter) (gfx.Texture, error) {
	desc, err := LoadImage(fsys, name)
	if err != nil {
		return nil, err
	}
	desc.MinFilter, desc.MagFilter = filter, filter
	tex, err := tc.CreateTexture(desc)
	if err != nil {
		return nil, errs.New(errs.ErrInit, "assets.LoadTexture", err)
	}
	return tex, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
