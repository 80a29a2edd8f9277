// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logFadeDelay is how long a log line replaces the help text.
const logFadeDelay = 4 * time.Second

// logRecordMsg carries one formatted log record into the program.
type logRecordMsg struct {
	summary string
	level   slog.Level
}

// logFadeMsg clears the status line once the record identified by
// sequence has been shown long enough.
type logFadeMsg struct {
	sequence uint64
}

// LogHandler is a slog.Handler that sends records into a running
// bubbletea program, where the model shows them in the status line.
// Writing to the terminal directly would tear the rendered frame.
//
// Records are dropped until [LogHandler.SetProgram] is called. Handlers
// derived with WithAttrs and WithGroup share the program, so one call
// on the root handler covers them all.
type LogHandler struct {
	level   slog.Leveler
	program *atomic.Pointer[tea.Program]
	prefix  string // Group path, dot-terminated, applied to attribute keys.
	attrs   []string
}

// NewLogHandler returns a handler for records at or above level.
func NewLogHandler(level slog.Leveler) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram starts delivery to program. Safe to call from any
// goroutine.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle implements slog.Handler.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	message := logRecordMsg{summary: handler.summarize(record), level: record.Level}
	// The widget logs from inside Update, where a blocking Send would
	// wait on its own event loop.
	go program.Send(message)
	return nil
}

// summarize renders a record as "message (key=value, ...)", handler
// attributes first.
func (handler *LogHandler) summarize(record slog.Record) string {
	parts := append([]string(nil), handler.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, handler.prefix, attr)
		return true
	})
	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		nested := prefix
		if attr.Key != "" {
			nested += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, nested, member)
		}
		return parts
	}
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}

// WithAttrs implements slog.Handler.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *handler
	derived.attrs = append([]string(nil), handler.attrs...)
	for _, attr := range attrs {
		derived.attrs = appendAttr(derived.attrs, handler.prefix, attr)
	}
	return &derived
}

// WithGroup implements slog.Handler.
func (handler *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := *handler
	derived.attrs = append([]string(nil), handler.attrs...)
	derived.prefix = handler.prefix + name + "."
	return &derived
}
