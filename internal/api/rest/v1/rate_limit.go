package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	rateLimitIdleTTL    = 10 * time.Minute
	rateLimitSweepEvery = 512
)

// RateLimiter applies a token bucket per client IP and evicts idle clients.
// A nil *RateLimiter allows every request.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byKey   map[string]*rateLimitEntry
	hits    uint64
	idleTTL time.Duration
}

type rateLimitEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns nil when rate limiting is disabled
func NewRateLimiter(settings config.RateLimitSettings) *RateLimiter {
	if !settings.Enabled || settings.RPS <= 0 || settings.Burst <= 0 {
		return nil
	}
	return &RateLimiter{
		limit:   rate.Limit(settings.RPS),
		burst:   settings.Burst,
		byKey:   make(map[string]*rateLimitEntry),
		idleTTL: rateLimitIdleTTL,
	}
}

// Allow reports whether one token can be consumed for key at now
func (l *RateLimiter) Allow(key string, now time.Time) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.byKey[key]
	if !ok {
		entry = &rateLimitEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = entry
	}
	entry.lastSeen = now
	allowed := entry.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%rateLimitSweepEvery == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}
	return allowed
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.Allow(ctx.ClientIP(), time.Now()) {
			abortWithError(ctx, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		ctx.Next()
	}
}
