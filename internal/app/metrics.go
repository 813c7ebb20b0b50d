package app

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type appMetricsCollection struct {
	formatCount    metric.Int64Counter
	formatDuration metric.Float64Histogram
}

var metrics appMetricsCollection

func init() {
	const name = "notations/app"
	meter := otel.Meter(name)

	formatCount, err := meter.Int64Counter(
		"app/format_count",
		metric.WithDescription("Total number of values formatted"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create format count metric: %w", err))
	}

	formatDuration, err := meter.Float64Histogram(
		"app/format_duration_seconds",
		metric.WithDescription("Time spent formatting a value"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to create format duration metric: %w", err))
	}

	metrics = appMetricsCollection{
		formatCount:    formatCount,
		formatDuration: formatDuration,
	}
}
