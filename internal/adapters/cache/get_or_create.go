package cache

import (
	"context"
	"fmt"

	"github.com/Amund211/notations/internal/logging"
)

// Returns data, created, error
func GetOrCreate[T any](ctx context.Context, cache Cache[T], key string, create func() (T, error)) (T, bool, error) {
	// Clean up the cache if we claim an entry, but don't set it
	// This allows other callers to try again
	claimed := false
	set := false
	defer func() {
		if claimed && !set {
			cache.delete(key)
		}
	}()

	for {
		result := cache.getOrClaim(key)

		if result.claimed {
			claimed = true

			logging.FromContext(ctx).DebugContext(ctx, "Creating cache entry", "cache", "miss", "key", key)

			data, err := create()
			if err != nil {
				var empty T
				return empty, false, fmt.Errorf("failed to create cache entry: %w", err)
			}

			cache.set(key, data)
			set = true

			return data, true, nil
		}

		if result.valid {
			logging.FromContext(ctx).DebugContext(ctx, "Using cache entry", "cache", "hit", "key", key)
			return result.data, false, nil
		}

		if err := ctx.Err(); err != nil {
			var empty T
			return empty, false, fmt.Errorf("cancelled while waiting for cache entry: %w", err)
		}
		cache.wait()
	}
}
