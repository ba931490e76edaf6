package main

import (
	"errors"
	"io/fs"

	"github.com/chewxy/math32"
	"github.com/hubastard/grove/v2/engine/assets"
	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/core"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/hubastard/grove/v2/engine/logx"
	"github.com/hubastard/grove/v2/engine/profiler"
	"github.com/hubastard/grove/v2/engine/scene"
)

// Layer2D draws a camera-controlled world: a sprite sheet, a triangle fan
// mesh, and a minimap rendered through a canvas.
type Layer2D struct {
	assets fs.FS

	cam    *scene.Camera2D
	ctrl   *scene.CameraController2D
	sheet  gfx.Texture
	player renderer2d.SubTexture
	mini   gfx.Canvas
	t      float32
}

func (l *Layer2D) OnAttach(ctx *core.Context) error {
	size := ctx.LogicalSize()
	l.cam = scene.NewCamera2D(size.X, size.Y)
	l.cam.SetZoom(4)
	l.ctrl = scene.NewCameraController2D(l.cam)

	r := ctx.Graphics()
	sheet, err := assets.LoadTexture(r.Device(), l.assets, "player.png", gfx.FilterNearest)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logx.Logger().Warn("player.png missing, using a checkerboard")
		sheet, err = r.NewTexture(checkerboard(64, 64, 8))
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}
	l.sheet = sheet
	l.player = renderer2d.FromPixels(sheet, 0, 0, 32, 32)

	l.mini, err = r.NewCanvas(256, 256)
	return err
}

func (l *Layer2D) OnDetach(ctx *core.Context) {
	dev := ctx.Graphics().Device()
	dev.DeleteTexture(l.sheet)
	dev.DeleteCanvas(l.mini)
}

func (l *Layer2D) OnUpdate(ctx *core.Context) error {
	dt := ctx.Timer().DeltaTime()
	l.ctrl.Update(ctx.Keyboard(), dt)
	l.t += float32(dt.Seconds())

	if wheel := ctx.Mouse().WheelDelta(); wheel.Y != 0 {
		l.cam.SetZoom(l.cam.Zoom * math32.Pow(1.1, wheel.Y))
	}
	if ctx.Keyboard().IsKeyDown(input.KeyEscape) {
		ctx.Quit()
	}
	return nil
}

func (l *Layer2D) OnRender(ctx *core.Context) error {
	defer profiler.Start("Layer2D.OnRender")()
	r := ctx.Graphics()

	// The minimap: the same world at a fixed zoom into the canvas.
	r.PushTarget()
	if err := r.SetCanvas(l.mini); err != nil {
		return err
	}
	if err := r.Clear(colors.Black.WithAlpha(0.6)); err != nil {
		return err
	}
	r.PushTransform()
	r.SetTransform(geom.Identity().Translate(128, 128))
	if err := l.drawWorld(r); err != nil {
		return err
	}
	if err := r.PopTransform(); err != nil {
		return err
	}
	if err := r.PopTarget(); err != nil {
		return err
	}

	r.PushTransform()
	r.SetTransform(l.cam.View())
	if err := l.drawWorld(r); err != nil {
		return err
	}
	if err := r.PopTransform(); err != nil {
		return err
	}

	size := r.TargetSize()
	dst := geom.R(size.X-272, size.Y-272, 256, 256)
	return r.DrawSprite(l.mini.Texture(), renderer2d.SpriteParams{
		Region: geom.R(0, 0, 256, 256),
	}, geom.Translation(dst.X, dst.Y))
}

func (l *Layer2D) drawWorld(r *renderer2d.Renderer2D) error {
	spin := geom.Identity().Rotate(l.t)
	if err := r.DrawSubTexture(l.player, renderer2d.SpriteParams{Origin: geom.V(16, 16)}, spin); err != nil {
		return err
	}

	fan := renderer2d.MeshParams{Primitive: renderer2d.MeshTriangleFan}
	fan.Vertices = append(fan.Vertices, renderer2d.Vertex{Color: colors.White})
	const segments = 12
	for i := 0; i <= segments; i++ {
		a := float32(i) / segments * 2 * math32.Pi
		c := colors.Cyan.Lerp(colors.Magenta, float32(i)/segments)
		fan.Vertices = append(fan.Vertices, renderer2d.Vertex{
			Position: geom.V(math32.Cos(a)*24, math32.Sin(a)*24),
			Color:    c,
		})
	}
	return r.DrawMesh(nil, fan, geom.Translation(64, 0))
}

func (l *Layer2D) OnEvent(ctx *core.Context, ev core.Event) (bool, error) {
	switch v := ev.(type) {
	case core.WindowResize:
		l.cam.SetViewport(v.Size.X, v.Size.Y)
	case core.KeyboardInput:
		mods := ctx.Keyboard().Modifiers()
		if v.Action == input.ActionDown && v.Key == input.KeyP && mods.Ctrl {
			if err := profiler.Dump("grove.speedscope.json"); err != nil {
				logx.Logger().Warn("profiler dump", "err", err)
			}
			return true, nil
		}
	}
	return false, nil
}

func checkerboard(w, h, cell int) gfx.TextureDesc {
	px := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(60)
			if (x/cell+y/cell)%2 == 0 {
				v = 200
			}
			i := (y*w + x) * 4
			px[i], px[i+1], px[i+2], px[i+3] = v, v, v, 255
		}
	}
	return gfx.TextureDesc{Width: w, Height: h, Pixels: px, MinFilter: gfx.FilterNearest, MagFilter: gfx.FilterNearest}
}
