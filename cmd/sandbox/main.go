package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/hubastard/grove/v2/engine/config"
	"github.com/hubastard/grove/v2/engine/core"
	glbackend "github.com/hubastard/grove/v2/engine/gfx/gl"
	"github.com/hubastard/grove/v2/engine/logx"
	"github.com/hubastard/grove/v2/engine/platform"
	"github.com/hubastard/grove/v2/engine/profiler"
)

// GLFW and GL calls must stay on the main thread from window creation on.
func init() { runtime.LockOSThread() }

func main() {
	cfgPath := flag.String("config", "grove.toml", "engine config, relative to the working directory")
	fps := flag.Float64("fps", -1, "override the target tick rate (0 = uncapped)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := logx.Logger()

	cfg, err := config.Load(os.DirFS("."), *cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("no config file, using defaults", "path", *cfgPath)
		cfg = config.Default()
	case err != nil:
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	if *fps >= 0 {
		cfg.Timer.FPS = *fps
	}
	cfg.Window.Title = "grove sandbox"

	if err := run(cfg); err != nil {
		log.Error("sandbox", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	profiler.Init(1 << 16)

	window, err := platform.NewGLFWWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	w, h := window.PhysicalSize()
	dev, err := glbackend.New(w, h, window.ScaleFactor())
	if err != nil {
		return err
	}

	engine, err := core.New(cfg, window, dev, core.WithGamepads(platform.NewGLFWGamepads()))
	if err != nil {
		return err
	}

	return engine.RunWith(func(ctx *core.Context) (core.Game, error) {
		layers := &core.LayerStack{}
		layers.Push(&Layer2D{assets: os.DirFS("assets")})
		layers.Push(&LayerDebug{})
		return layers, nil
	})
}
