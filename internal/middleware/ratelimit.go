package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/mitchell1972/examCoachNG/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit applies a fixed-window limit per caller. Authenticated
// requests are keyed by user id, anonymous ones by client IP. A failing
// counter never rejects a request.
func RateLimit(counter ratelimit.Counter, max int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID := UserID(c); userID != nil {
			key = "user:" + *userID
		}

		count, err := counter.Increment(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("rate limit counter error: %v", err)
			c.Next()
			return
		}

		if count > max {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
