package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/hubastard/grove/v2/engine/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode([]byte(`
[window]
title = "demo"
width = 800

[timer]
fps = 0
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "untouched keys keep defaults")
	assert.Zero(t, cfg.Timer.FPS)
	assert.Equal(t, 10, cfg.Timer.MaxLag)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[window"},
		{"negative fps", "[timer]\nfps = -1"},
		{"zero width", "[window]\nwidth = 0"},
		{"zero lag", "[timer]\nmax_lag = 0"},
		{"tiny buffer", "[graphics]\nmax_buffer_bytes = 16"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.ErrorIs(t, err, errs.ErrInit)
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"grove.toml": {Data: []byte("[graphics]\nclear_color = [1.0, 0.0, 0.0, 1.0]\n")},
	}
	cfg, err := Load(fsys, "grove.toml")
	require.NoError(t, err)
	assert.Equal(t, float32(1), cfg.Graphics.ClearColor[0])

	_, err = Load(fsys, "missing.toml")
	assert.ErrorIs(t, err, errs.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)
	cfg, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
