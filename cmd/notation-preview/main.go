package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	_ "golang.org/x/crypto/x509roots/fallback"

	"github.com/Amund211/notations/internal/adapters/cache"
	"github.com/Amund211/notations/internal/app"
	"github.com/Amund211/notations/internal/config"
	"github.com/Amund211/notations/internal/logging"
	"github.com/Amund211/notations/internal/notation"
	"github.com/Amund211/notations/internal/ratelimiting"
	"github.com/Amund211/notations/internal/reporting"
	"github.com/Amund211/notations/internal/telemetry"
)

const serviceName = "notation-preview"

func main() {
	instanceID := uuid.New().String()
	logLevel := new(slog.LevelVar)
	logger := logging.New(os.Stderr, logLevel).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	// A missing .env is fine, the environment may be set directly
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fail("Failed to load .env", "error", err.Error())
	}

	conf, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	if conf.IsDevelopment() {
		logLevel.Set(slog.LevelDebug)
	}
	logger.Info("Loaded config", "config", conf.NonSensitiveString())

	flush, err := reporting.NewSentryOrMock(conf)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()

	ctx := context.Background()

	if conf.OTelEnabled() {
		shutdown, err := telemetry.SetupOTelSDK(ctx, serviceName)
		if err != nil {
			fail("Failed to set up OpenTelemetry", "error", err.Error())
		}
		defer func() {
			err := shutdown(context.Background())
			if err != nil {
				logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
			}
		}()
		logger.Info("Initialized OpenTelemetry")
	}

	ctx = logging.AddToContext(ctx, logger)
	ctx = reporting.AddHubToContext(ctx)
	ctx = reporting.SetStartedAtInContext(ctx, time.Now())
	ctx = reporting.AddTagsToContext(ctx, map[string]string{
		"instanceID": instanceID,
	})

	ctx, span := otel.Tracer("notations/cmd").Start(ctx, "notation-preview")

	formatCache, stopCache := cache.NewTTLCache[string](10*time.Minute, 10_000)
	defer stopCache()

	reportLimiter, stopLimiter := ratelimiting.NewTokenBucketRateLimiter(1.0/60, 1)
	defer stopLimiter()

	registry := notation.NewRegistry()

	rootCmd := newRootCmd(commandDependencies{
		registry:        registry,
		formatValue:     app.BuildFormatValue(registry, formatCache, reportLimiter, conf.DisplayOptions()),
		toggleMilestone: app.BuildToggleEternityMilestone(),
		defaultNotation: conf.Notation(),
		defaultPlaces:   conf.Places(),
	})

	err = rootCmd.ExecuteContext(ctx)
	span.End()
	if err != nil {
		// Deferred cleanup is skipped by os.Exit
		flush()
		logger.Error("Command failed", "error", err.Error())
		os.Exit(1)
	}
}
