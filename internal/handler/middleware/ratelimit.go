package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"salon-scheduler/internal/handler/httperr"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds one token bucket per client IP.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perSec   rate.Limit
	burst    int
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.perSec, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware throttles each client IP. The chat layer retries on
// 429, so bursts degrade to queuing rather than errors.
func RateLimitMiddleware(cfg config.BookingConfig) gin.HandlerFunc {
	store := &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		perSec:   rate.Limit(cfg.RateLimitPerSecond),
		burst:    cfg.RateLimitBurst,
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			slog.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}
