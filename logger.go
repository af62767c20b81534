package riot

import (
	"context"
	"log/slog"
)

// nopHandler discards all records. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerSetter is implemented by devices that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger passes l to dev if the device supports logging.
func propagateLogger(dev any, l *slog.Logger) {
	if ls, ok := dev.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
