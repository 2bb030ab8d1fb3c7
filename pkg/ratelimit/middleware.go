package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"ticketlog/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware returns a gin handler enforcing the rate limiter on every request
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		// Determine rate limit type from route
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusInternalServerError,
				"Rate limit check failed", nil, nil)
			c.Abort()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	// Health/monitoring endpoints
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	// Report endpoints recompute from scratch on every call
	case strings.Contains(path, "/statistics"),
		strings.Contains(path, "/year-in-review"):
		return RateLimitTypeAnalytics

	// Image generation hits a paid external API
	case strings.Contains(path, "/images/"),
		strings.Contains(path, "/prompts/"):
		return RateLimitTypeImages

	// Public ticket browsing
	case strings.Contains(path, "/tickets/user/"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
