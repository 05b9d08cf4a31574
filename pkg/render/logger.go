package render

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/leterax/sandbox/internal/openglhelper"
)

// nopHandler discards every record. Enabled returns false so callers skip
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

// SetLogger configures the logger for render and internal/openglhelper.
// The default logger is silent; pass nil to restore it.
//
// Levels used:
//   - [slog.LevelDebug]: per-resource details (shader paths, texture sizes)
//   - [slog.LevelInfo]: lifecycle (window created, GL version, loop exit)
//   - [slog.LevelWarn]: non-fatal resource failures (missing textures)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	openglhelper.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
