package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Amund211/notations/internal/adapters/cache"
	"github.com/Amund211/notations/internal/bignum"
	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/notation"
	"github.com/Amund211/notations/internal/ratelimiting"
	"github.com/Amund211/notations/internal/reporting"
)

type FormatValue func(ctx context.Context, id notation.ID, value bignum.Decimal, places, placesUnder1000 int) (string, error)

type notationRegistry interface {
	Lookup(id notation.ID) (notation.Notation, bool)
}

func optionsCacheKey(opts notation.Options) string {
	return strings.Join([]string{
		strconv.Itoa(opts.DisplayBase),
		opts.DisplayDigits,
		strconv.Itoa(opts.ExponentBase),
		opts.Alphabet,
		strconv.FormatBool(opts.ExponentCommas.Show),
		strconv.FormatFloat(opts.ExponentCommas.Min, 'g', -1, 64),
		strconv.FormatFloat(opts.ExponentCommas.Max, 'g', -1, 64),
	}, ",")
}

func formatCacheKey(optionsKey string, id notation.ID, value bignum.Decimal, places, placesUnder1000 int) string {
	return strings.Join([]string{
		optionsKey,
		string(id),
		strconv.Itoa(places),
		strconv.Itoa(placesUnder1000),
		value.String(),
	}, "|")
}

// BuildFormatValue renders values with the notation picked by id
//
// The options are part of the cache key, so one cache can be shared between
// functions built with different options. Unknown ids are reported at most as
// often as
// reportLimiter allows per id.
func BuildFormatValue(
	registry notationRegistry,
	formatCache cache.Cache[string],
	reportLimiter ratelimiting.RateLimiter,
	opts notation.Options,
) FormatValue {
	tracer := otel.Tracer("notations/app")
	optionsKey := optionsCacheKey(opts)

	return func(ctx context.Context, id notation.ID, value bignum.Decimal, places, placesUnder1000 int) (string, error) {
		ctx, span := tracer.Start(ctx, "FormatValue", trace.WithAttributes(
			attribute.String("notation", string(id)),
		))
		defer span.End()

		start := time.Now()

		n, ok := registry.Lookup(id)
		if !ok {
			err := fmt.Errorf("%w: %q", domain.ErrUnknownNotation, id)
			if reportLimiter.Consume(string(id)) {
				reporting.Report(ctx, err, map[string]string{
					"notation": string(id),
				})
			}
			span.RecordError(err)
			return "", err
		}

		key := formatCacheKey(optionsKey, id, value, places, placesUnder1000)
		formatted, created, err := cache.GetOrCreate(ctx, formatCache, key, func() (string, error) {
			return n.Format(value, places, placesUnder1000, opts), nil
		})
		if err != nil {
			// NOTE: create never fails, so this is a cancelled context
			return "", fmt.Errorf("failed to cache.GetOrCreate formatted value: %w", err)
		}

		cacheResult := "hit"
		if created {
			cacheResult = "miss"
		}
		attributesOption := metric.WithAttributes(
			attribute.String("notation", string(id)),
			attribute.String("cache", cacheResult),
		)
		metrics.formatCount.Add(ctx, 1, attributesOption)
		metrics.formatDuration.Record(ctx, time.Since(start).Seconds(), attributesOption)

		return formatted, nil
	}
}
