package reporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/Amund211/notations/internal/config"
	"github.com/Amund211/notations/internal/logging"
	"github.com/getsentry/sentry-go"
)

var hostRx = regexp.MustCompile(`\[:{0,2}([0-9a-f]{0,4}:?){1,8}\]:\d+`)
var quotedRx = regexp.MustCompile(`"[^"]*"`)
var numberRx = regexp.MustCompile(`-?\d+(\.\d+)?(e[+-]?\d+)?`)

// sanitizeError strips values from the message so Sentry groups similar errors
func sanitizeError(err string) string {
	err = hostRx.ReplaceAllString(err, "<host>")
	err = quotedRx.ReplaceAllString(err, `"<value>"`)
	err = numberRx.ReplaceAllString(err, "<number>")
	return err
}

func Report(ctx context.Context, err error, extras ...map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	logger := logging.FromContext(ctx)
	if hub == nil {
		logger.WarnContext(ctx, "Failed to get Sentry hub from context", "error", err, "extras", extras)
		return
	}

	if err == nil {
		err = errors.New("No error provided")
	}

	logger.ErrorContext(
		ctx,
		"Reporting error to Sentry",
		slog.String("error", err.Error()),
		slog.Any("extras", extras),
	)

	hub.WithScope(func(scope *sentry.Scope) {
		meta := metaFromContext(ctx)
		scope.SetTags(meta.tags)
		for key, value := range meta.extras {
			scope.SetExtra(key, value)
		}
		if !meta.startedAt.IsZero() {
			scope.SetExtra("secondsSinceStart", time.Since(meta.startedAt).Seconds())
		}

		for _, extra := range extras {
			for key, value := range extra {
				scope.SetExtra(key, value)
			}
		}

		scope.SetFingerprint([]string{"{{ default }}", sanitizeError(err.Error())})
		hub.CaptureException(err)
	})
}

// AddHubToContext gives the context its own hub so scopes do not leak between callers
func AddHubToContext(ctx context.Context) context.Context {
	return sentry.SetHubOnContext(ctx, sentry.CurrentHub().Clone())
}

func InitSentry(sentryDSN string, environment string) (func(), error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              sentryDSN,
		Environment:      environment,
		EnableTracing:    true,
		TracesSampleRate: 1.0 / 100.0,
	})
	if err != nil {
		return nil, err
	}

	flush := func() {
		sentry.Flush(5 * time.Second)
	}

	return flush, nil
}

func NewSentryOrMock(conf config.Config) (func(), error) {
	if conf.SentryDSN() != "" {
		return InitSentry(conf.SentryDSN(), conf.Environment())
	}

	if conf.IsProduction() || conf.IsStaging() {
		return nil, fmt.Errorf("Missing Sentry DSN in %s environment", conf.Environment())
	}

	return func() {}, nil
}
