package rate_limiter

import (
	"sync"

	"golang.org/x/time/rate"
)

// ClientRateLimiter keeps one token bucket per client key (remote IP).
type ClientRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      rate.Limit
	burst    int
}

func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether the client identified by key may proceed.
func (c *ClientRateLimiter) Allow(key string) bool {
	return c.getLimiter(key).Allow()
}

func (c *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[key]
	c.mu.RUnlock()

	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check pattern
	if limiter, exists := c.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(c.rps, c.burst)
	c.limiters[key] = limiter
	return limiter
}
