// Package logx holds the logger shared by every engine package.
//
// By default the engine produces no log output. Call SetLogger to enable it:
//
//	logx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// Levels used by the engine:
//   - [slog.LevelDebug]: buffer growth, batch flushes, raw events dropped
//   - [slog.LevelInfo]: lifecycle (state transitions, GL context created)
//   - [slog.LevelWarn]: non-fatal issues (input tracker at capacity)
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger installs l for all engine packages. Passing nil restores the
// silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger.
func Logger() *slog.Logger { return loggerPtr.Load() }
