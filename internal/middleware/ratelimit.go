package middleware

import (
	"net/http"
	"sync"
	"time"

	"villaniva/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit allows max requests per client IP within window, the same
// shape as the window/max knobs exposed through the environment.
func RateLimit(window time.Duration, max int) gin.HandlerFunc {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}

	var limiters sync.Map
	perSecond := rate.Limit(float64(max) / window.Seconds())

	getLimiter := func(key string) *rate.Limiter {
		if v, ok := limiters.Load(key); ok {
			return v.(*rate.Limiter)
		}
		lim := rate.NewLimiter(perSecond, max)
		actual, _ := limiters.LoadOrStore(key, lim)
		return actual.(*rate.Limiter)
	}

	return func(c *gin.Context) {
		lim := getLimiter(c.ClientIP())
		if !lim.Allow() {
			response.Error(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
