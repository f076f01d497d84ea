package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Run identifies one process invocation. Every record written through a
// logger built with a Run carries its session id and command path.
type Run struct {
	SessionID string
	Command   string
}

func (r Run) attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 2)
	if id := strings.TrimSpace(r.SessionID); id != "" {
		attrs = append(attrs, slog.String(FieldSessionID, id))
	}
	if cmd := strings.TrimSpace(r.Command); cmd != "" {
		attrs = append(attrs, slog.String(FieldInvocation, cmd))
	}
	return attrs
}

// runHandler appends the run attributes after the record's own, so they
// stay at the top level even when the logger has open groups.
type runHandler struct {
	base  slog.Handler
	attrs []slog.Attr
}

func newRunHandler(base slog.Handler, run Run) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	attrs := run.attrs()
	if len(attrs) == 0 {
		return base
	}
	return &runHandler{base: base, attrs: attrs}
}

func (h *runHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *runHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(h.attrs...)
	return h.base.Handle(ctx, record)
}

func (h *runHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &runHandler{base: h.base.WithAttrs(attrs), attrs: h.attrs}
}

func (h *runHandler) WithGroup(name string) slog.Handler {
	return &runHandler{base: h.base.WithGroup(name), attrs: h.attrs}
}
