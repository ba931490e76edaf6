// Package config holds the engine configuration and its TOML loader.
package config

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/hubastard/grove/v2/engine/colors"
	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Window   Window   `toml:"window"`
	Timer    Timer    `toml:"timer"`
	Graphics Graphics `toml:"graphics"`
	Input    Input    `toml:"input"`
}

type Window struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	VSync     bool   `toml:"vsync"`
	Resizable bool   `toml:"resizable"`
}

type Timer struct {
	// FPS is the target tick rate; 0 means uncapped (every poll is due).
	FPS float64 `toml:"fps"`
	// MaxLag caps the accumulator, in ticks, after a stall.
	MaxLag int `toml:"max_lag"`
}

type Graphics struct {
	ClearColor colors.Color `toml:"clear_color"`
	// InitialVertices sizes the vertex buffer at context creation.
	InitialVertices int `toml:"initial_vertices"`
	// MaxBufferBytes bounds growth of each GPU buffer.
	MaxBufferBytes int `toml:"max_buffer_bytes"`
}

type Input struct {
	// MaxTrackedCodes bounds every key/button tracker; 0 is unbounded.
	MaxTrackedCodes int `toml:"max_tracked_codes"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "grove",
			Width:     1280,
			Height:    720,
			VSync:     true,
			Resizable: true,
		},
		Timer: Timer{FPS: 60, MaxLag: 10},
		Graphics: Graphics{
			ClearColor:      colors.DarkGray,
			InitialVertices: 4096,
			MaxBufferBytes:  64 << 20,
		},
		Input: Input{MaxTrackedCodes: 512},
	}
}

// bytesPerVertex is the size of one {pos, uv, rgba} float32 vertex.
const bytesPerVertex = 8 * 4

// Validate reports the first invalid field as an errs.ErrInit error.
func (c Config) Validate() error {
	const op = "config.Validate"
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errs.Errorf(errs.ErrInit, op, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Timer.FPS < 0 || math.IsNaN(c.Timer.FPS) || math.IsInf(c.Timer.FPS, 0):
		return errs.Errorf(errs.ErrInit, op, "timer fps %v must be finite and >= 0", c.Timer.FPS)
	case c.Timer.MaxLag < 1:
		return errs.Errorf(errs.ErrInit, op, "timer max_lag %d must be >= 1", c.Timer.MaxLag)
	case c.Graphics.InitialVertices <= 0:
		return errs.Errorf(errs.ErrInit, op, "graphics initial_vertices %d must be positive", c.Graphics.InitialVertices)
	case c.Graphics.MaxBufferBytes < c.Graphics.InitialVertices*bytesPerVertex:
		return errs.Errorf(errs.ErrInit, op, "graphics max_buffer_bytes %d is smaller than the initial buffer", c.Graphics.MaxBufferBytes)
	case c.Input.MaxTrackedCodes < 0:
		return errs.Errorf(errs.ErrInit, op, "input max_tracked_codes %d must be >= 0", c.Input.MaxTrackedCodes)
	}
	return nil
}

// Decode parses TOML on top of Default and validates the result.
// Keys absent from data keep their default values.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errs.New(errs.ErrInit, "config.Decode", fmt.Errorf("parse toml: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and decodes name from fsys.
func Load(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, errs.New(errs.ErrIO, "config.Load", fmt.Errorf("read %q: %w", name, err))
	}
	return Decode(data)
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
