package sapling

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
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

// SetLogger sets the logger used for sapling diagnostics. By default sapling
// produces no log output. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: unmapped keys and detached references (debug mode only)
//   - [slog.LevelWarn]: recoverable problems in visual definitions
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current sapling logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// globalDebug enables extra diagnostics on paths that are otherwise silent,
// such as key lookups that fall back to KeyUnknown.
var globalDebug bool

// SetDebugMode enables or disables debug diagnostics. Diagnostics are written
// to the logger installed with SetLogger.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}
