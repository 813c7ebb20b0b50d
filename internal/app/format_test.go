package app_test

import (
	"context"
	"testing"

	"github.com/Amund211/notations/internal/adapters/cache"
	"github.com/Amund211/notations/internal/app"
	"github.com/Amund211/notations/internal/bignum"
	"github.com/Amund211/notations/internal/domain"
	"github.com/Amund211/notations/internal/notation"
	"github.com/stretchr/testify/require"
)

type mockRateLimiter struct {
	allow    bool
	consumed []string
}

func (m *mockRateLimiter) Consume(key string) bool {
	m.consumed = append(m.consumed, key)
	return m.allow
}

func TestBuildFormatValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := notation.NewRegistry()

	tests := []struct {
		id              notation.ID
		value           bignum.Decimal
		places          int
		placesUnder1000 int
		expected        string
	}{
		{notation.MixedScientific, bignum.FromFloat(1234000), 2, 0, "1.23 M"},
		{notation.MixedScientific, bignum.MustParse("1e33"), 2, 0, "1.00e33"},
		{notation.Scientific, bignum.FromFloat(1234000), 2, 0, "1.23e6"},
		{notation.Standard, bignum.FromFloat(12.5), 2, 1, "12.5"},
		{notation.Logarithm, bignum.FromFloat(1234000), 2, 0, "e6.09"},
		{notation.Letters, bignum.FromFloat(1234000), 2, 0, "1.23F"},
		{notation.Scientific, bignum.NaN, 2, 0, "NaN"},
		{notation.Scientific, bignum.Infinity.Neg(), 2, 0, "-Infinite"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id)+" "+tt.expected, func(t *testing.T) {
			t.Parallel()

			formatValue := app.BuildFormatValue(registry, cache.NewBasicCache[string](), &mockRateLimiter{allow: true}, notation.DefaultOptions())

			formatted, err := formatValue(ctx, tt.id, tt.value, tt.places, tt.placesUnder1000)
			require.NoError(t, err)
			require.Equal(t, tt.expected, formatted)

			// Second call is served from the cache
			formatted, err = formatValue(ctx, tt.id, tt.value, tt.places, tt.placesUnder1000)
			require.NoError(t, err)
			require.Equal(t, tt.expected, formatted)
		})
	}

	t.Run("unknown notation", func(t *testing.T) {
		t.Parallel()

		limiter := &mockRateLimiter{allow: true}
		formatValue := app.BuildFormatValue(registry, cache.NewBasicCache[string](), limiter, notation.DefaultOptions())

		_, err := formatValue(ctx, "roman", bignum.One, 2, 0)
		require.ErrorIs(t, err, domain.ErrUnknownNotation)
		require.Equal(t, []string{"roman"}, limiter.consumed)
	})

	t.Run("unknown notation while throttled", func(t *testing.T) {
		t.Parallel()

		limiter := &mockRateLimiter{allow: false}
		formatValue := app.BuildFormatValue(registry, cache.NewBasicCache[string](), limiter, notation.DefaultOptions())

		for range 3 {
			_, err := formatValue(ctx, "roman", bignum.One, 2, 0)
			require.ErrorIs(t, err, domain.ErrUnknownNotation)
		}
		require.Len(t, limiter.consumed, 3)
	})

	t.Run("options are applied", func(t *testing.T) {
		t.Parallel()

		opts := notation.DefaultOptions()
		opts.DisplayBase = 16
		formatValue := app.BuildFormatValue(registry, cache.NewBasicCache[string](), &mockRateLimiter{allow: true}, opts)

		formatted, err := formatValue(ctx, notation.Scientific, bignum.FromFloat(255), 2, 0)
		require.NoError(t, err)
		require.Equal(t, "FF", formatted)
	})

	t.Run("cancelled context does not block on a claimed entry", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		formatValue := app.BuildFormatValue(registry, cache.NewBasicCache[string](), &mockRateLimiter{allow: true}, notation.DefaultOptions())

		// Nothing holds the claim, so the value is still created
		formatted, err := formatValue(ctx, notation.Scientific, bignum.FromFloat(1234000), 2, 0)
		require.NoError(t, err)
		require.Equal(t, "1.23e6", formatted)
	})
}
