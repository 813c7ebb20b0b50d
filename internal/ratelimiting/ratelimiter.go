package ratelimiting

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

type RateLimiter interface {
	Consume(key string) bool
}

type tokenBucketRateLimiter struct {
	limiterByKey    *ttlcache.Cache[string, *rate.Limiter]
	refillPerSecond float64
	burstSize       int
}

func (rateLimiter *tokenBucketRateLimiter) Consume(key string) bool {
	limiter, _ := rateLimiter.limiterByKey.GetOrSet(key, rate.NewLimiter(rate.Limit(rateLimiter.refillPerSecond), rateLimiter.burstSize))
	return limiter.Value().Allow()
}

type RefillPerSecond float64
type BurstSize int

// NewTokenBucketRateLimiter keeps one token bucket per key
//
// Buckets for keys that have not been seen for 30 minutes are dropped.
// The second return value stops the cleanup goroutine.
func NewTokenBucketRateLimiter(refillPerSecond RefillPerSecond, burstSize BurstSize) (RateLimiter, func()) {
	limiterTTLCache := ttlcache.New[string, *rate.Limiter](
		ttlcache.WithTTL[string, *rate.Limiter](30 * time.Minute),
	)
	go limiterTTLCache.Start()

	return &tokenBucketRateLimiter{
		limiterByKey:    limiterTTLCache,
		refillPerSecond: float64(refillPerSecond),
		burstSize:       int(burstSize),
	}, limiterTTLCache.Stop
}

type unlimitedRateLimiter struct{}

func (unlimitedRateLimiter) Consume(key string) bool {
	return true
}

// NewUnlimitedRateLimiter never throttles
func NewUnlimitedRateLimiter() RateLimiter {
	return unlimitedRateLimiter{}
}
