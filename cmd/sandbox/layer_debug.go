package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/core"
	"github.com/hubastard/grove/v2/engine/geom"
	"github.com/hubastard/grove/v2/engine/gfx/renderer2d"
	"github.com/hubastard/grove/v2/engine/input"
	"github.com/hubastard/grove/v2/engine/profiler"
	"github.com/hubastard/grove/v2/engine/text"
	"golang.org/x/image/font/gofont/gomono"
)

// LayerDebug overlays frame, renderer and memory stats in a clipped
// viewport. F1 toggles it.
type LayerDebug struct {
	font   *text.Font
	hidden bool
}

func (l *LayerDebug) OnAttach(ctx *core.Context) error {
	var err error
	l.font, err = text.ParseTTF(ctx.Graphics().Device(), gomono.TTF, 16)
	return err
}

func (l *LayerDebug) OnDetach(ctx *core.Context) {
	ctx.Graphics().Device().DeleteTexture(l.font.Texture)
}

func (l *LayerDebug) OnUpdate(ctx *core.Context) error { return nil }

func (l *LayerDebug) OnRender(ctx *core.Context) error {
	if l.hidden {
		return nil
	}
	defer profiler.Start("LayerDebug.OnRender")()
	r := ctx.Graphics()
	tm := ctx.Timer()
	stats := r.Stats() // world draws of this frame so far
	mem := profiler.ReadMemory()

	var b strings.Builder
	fmt.Fprintf(&b, "Frame %d  up %s\n", tm.Ticks(), tm.TotalTime().Truncate(time.Second))
	fmt.Fprintf(&b, "  %.2f ms  %.1f FPS (%.1f polls/s)\n", float64(tm.DeltaTime().Microseconds())/1000, tm.FPS(), tm.RealTimeFPS())
	fmt.Fprintf(&b, "2D renderer\n")
	fmt.Fprintf(&b, "  draw calls %d  quads %d  meshes %d\n", stats.DrawCalls, stats.QuadCount, stats.MeshCount)
	fmt.Fprintf(&b, "  vertices %d  indices %d\n", stats.VertexCount, stats.IndexCount)
	fmt.Fprintf(&b, "Input\n")
	fmt.Fprintf(&b, "  held keys %v\n", ctx.Keyboard().HeldKeys())
	fmt.Fprintf(&b, "Memory\n")
	fmt.Fprintf(&b, "  heap %.3f MB  mallocs %d  goroutines %d", float64(mem.HeapBytes)/(1<<20), mem.Mallocs, mem.Goroutines)

	params := text.Params{Size: 16, LineSpacing: 2, WrapWidth: 400}
	panel := text.Measure(l.font, b.String(), params)
	clip := geom.R(16, 16, panel.X+32, panel.Y+32)

	r.PushTarget()
	if err := r.SetViewport(&clip); err != nil {
		return err
	}
	r.PushTransform()
	r.SetTransform(geom.Identity())
	err := r.DrawSprite(nil, renderer2d.SpriteParams{
		Region: geom.R(0, 0, clip.W, clip.H),
		Colors: renderer2d.Tint(colors.Black.WithAlpha(0.5)),
	}, geom.Identity())
	if err == nil {
		err = text.Draw(r, l.font, b.String(), params, colors.Yellow, geom.Translation(16, 16))
	}
	if err != nil {
		return err
	}
	if err := r.PopTransform(); err != nil {
		return err
	}
	return r.PopTarget()
}

func (l *LayerDebug) OnEvent(ctx *core.Context, ev core.Event) (bool, error) {
	if k, ok := ev.(core.KeyboardInput); ok && k.Key == input.KeyF1 && k.Action == input.ActionDown {
		l.hidden = !l.hidden
		return true, nil
	}
	return false, nil
}
