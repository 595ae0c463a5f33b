package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"vif/config"
)

// maxTrackedClients bounds limiter memory; idle clients expire from the LRU
// and start with a fresh bucket on return.
const maxTrackedClients = 4096

// clientLimiters holds one token bucket per client IP.
type clientLimiters struct {
	cache *lru.LRU[string, *rate.Limiter]
	rps   rate.Limit
	burst int
}

func newClientLimiters(cfg config.RateLimitConfig, ttl time.Duration) *clientLimiters {
	return &clientLimiters{
		cache: lru.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, ttl),
		rps:   rate.Limit(cfg.RequestsPerSecond),
		burst: cfg.Burst,
	}
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	if limiter, ok := cl.cache.Get(key); ok {
		return limiter
	}
	limiter := rate.NewLimiter(cl.rps, cl.burst)
	cl.cache.Add(key, limiter)
	return limiter
}

// RateLimit throttles per client IP. It guards the routes that fan out to
// paid upstream APIs; a single misbehaving client cannot burn the quota.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.config.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		if !m.clients.get(key).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", key, c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": http.StatusTooManyRequests,
				"message":    "too many requests",
			})
			return
		}
		c.Next()
	}
}
