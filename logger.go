package shape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so rejected
// constructions cost no attribute formatting while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger sets the logger that receives the package's records. A nil
// logger silences the package again, which is also the initial state.
// It may be called while other goroutines construct figures.
//
// The package emits one kind of record, at [slog.LevelDebug], each time
// [NewCircle] or [NewTriangle] rejects its input:
//
//	msg="shape: construction rejected" shape=triangle param=sides values="[1 1 5]" reason="cannot form a triangle"
//
// The attributes mirror the fields of the returned [*ArgumentError].
// Successful constructions and area queries are never logged.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed by [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
