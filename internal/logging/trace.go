package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// NewTraceLogHandler returns a slog.Handler that adds the active span to log records
//
// NOTE: Requires the use of the *Context slog methods to get the tracing info
func NewTraceLogHandler(baseHandler slog.Handler) *traceLogHandler {
	return &traceLogHandler{base: baseHandler}
}

type traceLogHandler struct {
	base slog.Handler
}

func (h *traceLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *traceLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
			slog.Bool("trace_sampled", sc.TraceFlags().IsSampled()),
		)
	}
	return h.base.Handle(ctx, r)
}

func (h *traceLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewTraceLogHandler(h.base.WithAttrs(attrs))
}

func (h *traceLogHandler) WithGroup(name string) slog.Handler {
	return NewTraceLogHandler(h.base.WithGroup(name))
}

// Type assertion
var _ slog.Handler = (*traceLogHandler)(nil)
