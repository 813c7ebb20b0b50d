package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type loggerContextKey struct{}

// New returns the JSON logger used across the module, with trace correlation
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTraceLogHandler(handler))
}

func FromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger)
	if !ok || logger == nil {
		fallback := New(os.Stderr, slog.LevelInfo)
		fallback = fallback.With(slog.String("logger", "fallback"))
		return fallback
	}
	return logger
}

func AddToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

func AddMetaToContext(ctx context.Context, args ...slog.Attr) context.Context {
	logger := FromContext(ctx)

	// Convert our []slog.Attr to []any
	anySlice := make([]any, len(args))
	for i, arg := range args {
		anySlice[i] = arg
	}

	withMeta := logger.With(anySlice...)

	return AddToContext(ctx, withMeta)
}
