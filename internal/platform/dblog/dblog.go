// Copyright (c) 2026 Wavecrate. All rights reserved.

/*
Package dblog is an [slog.Handler] that persists log records as software
log rows.

The database is not available when logging starts (the pool itself logs
during bring-up), so the handler buffers records in a bounded in-memory
backlog until a store is attached. Attach replays the backlog oldest
first, then the handler writes through. Persistence failures and overflow
are absorbed: logging never returns an error to the caller, and a full
backlog drops the newest record and counts the drop.
*/
package dblog

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/wavecrate/wavecrate/internal/softwarelog"
)

// Handler buffers then persists log records. Safe for concurrent use;
// handlers derived via WithAttrs/WithGroup share the backlog and store.
type Handler struct {
	level      slog.Leveler
	tag        string
	attrPrefix string
	state      *state
}

// state is the mutable core shared by all derived handlers.
type state struct {
	mu         sync.Mutex
	repo       softwarelog.Repository
	backlog    []*softwarelog.Entry
	maxBacklog int
	dropped    int
}

// NewHandler creates a detached handler. tag labels every row this
// handler writes (typically the app name); records below level are
// ignored.
func NewHandler(tag string, level slog.Leveler, maxBacklog int) *Handler {
	return &Handler{
		level: level,
		tag:   tag,
		state: &state{maxBacklog: maxBacklog},
	}
}

// Attach connects the store and replays the backlog oldest-first. The
// store is not published until the backlog is fully drained: records
// logged while the replay runs keep buffering and are picked up by a
// later drain pass, so nothing overtakes an older buffered record.
// Replay failures are dropped silently, the same as write-through
// failures.
func (handler *Handler) Attach(repo softwarelog.Repository) {
	for {
		handler.state.mu.Lock()
		pending := handler.state.backlog
		handler.state.backlog = nil
		if len(pending) == 0 {
			handler.state.repo = repo
			dropped := handler.state.dropped
			handler.state.dropped = 0
			handler.state.mu.Unlock()

			if dropped > 0 {
				_ = repo.CreateEntry(stdctx.Background(), &softwarelog.Entry{
					Timestamp: time.Now(),
					Tag:       handler.tag,
					Level:     slog.LevelWarn.String(),
					Message:   fmt.Sprintf("dblog backlog overflowed; %d records dropped", dropped),
				})
			}
			return
		}
		handler.state.mu.Unlock()

		for _, entry := range pending {
			_ = repo.CreateEntry(stdctx.Background(), entry)
		}
	}
}

// Dropped reports how many records were lost to backlog overflow since
// the last Attach.
func (handler *Handler) Dropped() int {
	handler.state.mu.Lock()
	defer handler.state.mu.Unlock()
	return handler.state.dropped
}

func (handler *Handler) Enabled(_ stdctx.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle converts the record to a row. It never returns an error: a log
// write must not fail the operation that logged.
func (handler *Handler) Handle(context stdctx.Context, record slog.Record) error {
	entry := &softwarelog.Entry{
		Timestamp: record.Time,
		Tag:       handler.tag,
		Level:     record.Level.String(),
		Message:   handler.renderMessage(record),
	}

	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		entry.Filename = frame.File
		entry.LineNum = frame.Line
	}

	handler.state.mu.Lock()
	repo := handler.state.repo
	if repo == nil {
		if len(handler.state.backlog) >= handler.state.maxBacklog {
			handler.state.dropped++
		} else {
			handler.state.backlog = append(handler.state.backlog, entry)
		}
		handler.state.mu.Unlock()
		return nil
	}
	handler.state.mu.Unlock()

	_ = repo.CreateEntry(context, entry)
	return nil
}

// renderMessage flattens the record's attrs into the message text; the
// software_log table has no structured columns beyond the fixed set.
func (handler *Handler) renderMessage(record slog.Record) string {
	var builder strings.Builder
	builder.WriteString(record.Message)
	if handler.attrPrefix != "" {
		builder.WriteString(" ")
		builder.WriteString(strings.TrimSpace(handler.attrPrefix))
	}

	record.Attrs(func(attr slog.Attr) bool {
		builder.WriteString(" ")
		builder.WriteString(attr.String())
		return true
	})

	return builder.String()
}

func (handler *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return handler
	}

	var builder strings.Builder
	builder.WriteString(handler.attrPrefix)
	for _, attr := range attrs {
		builder.WriteString(attr.String())
		builder.WriteString(" ")
	}

	return &Handler{
		level:      handler.level,
		tag:        handler.tag,
		attrPrefix: builder.String(),
		state:      handler.state,
	}
}

func (handler *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}

	return &Handler{
		level:      handler.level,
		tag:        handler.tag,
		attrPrefix: handler.attrPrefix + name + ".",
		state:      handler.state,
	}
}

var _ slog.Handler = (*Handler)(nil)
