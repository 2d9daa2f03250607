// Copyright (c) 2026 Wavecrate. All rights reserved.

package dblog

import (
	stdctx "context"
	"log/slog"
)

// Fanout duplicates records to every wrapped handler, so the same logger
// can feed stdout JSON and the software log table at different levels.
type Fanout struct {
	handlers []slog.Handler
}

// NewFanout wraps the given handlers. Order matters only for error
// reporting; records go to every handler that is enabled for the level.
func NewFanout(handlers ...slog.Handler) *Fanout {
	return &Fanout{handlers: handlers}
}

func (fanout *Fanout) Enabled(context stdctx.Context, level slog.Level) bool {
	for _, handler := range fanout.handlers {
		if handler.Enabled(context, level) {
			return true
		}
	}
	return false
}

func (fanout *Fanout) Handle(context stdctx.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range fanout.handlers {
		if !handler.Enabled(context, record.Level) {
			continue
		}
		if err := handler.Handle(context, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (fanout *Fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make([]slog.Handler, len(fanout.handlers))
	for i, handler := range fanout.handlers {
		derived[i] = handler.WithAttrs(attrs)
	}
	return &Fanout{handlers: derived}
}

func (fanout *Fanout) WithGroup(name string) slog.Handler {
	derived := make([]slog.Handler, len(fanout.handlers))
	for i, handler := range fanout.handlers {
		derived[i] = handler.WithGroup(name)
	}
	return &Fanout{handlers: derived}
}

var _ slog.Handler = (*Fanout)(nil)
