package middleware

import (
	"crypto/subtle"
	"net/http"

	"ticketlog/internal/shared/config"
	"ticketlog/internal/shared/utils/response"
	"ticketlog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// APIKeyAuthWithConfig validates the X-API-Key header against the configured
// key set. When no keys are configured the check is skipped, which keeps
// local development friction-free.
func APIKeyAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			logger.GetDefault().LogAPIKeyRejected(c.Request.Context(), c.ClientIP(), "missing X-API-Key header")
			response.RespondJSON(c, "error", http.StatusUnauthorized, "X-API-Key header is required", nil, nil)
			c.Abort()
			return
		}

		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				c.Next()
				return
			}
		}

		logger.GetDefault().LogAPIKeyRejected(c.Request.Context(), c.ClientIP(), "unknown API key")
		response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid API key", nil, nil)
		c.Abort()
	}
}

// RequireUserHeader extracts the caller identity from the X-User-Id header
// and stores it in the gin context under "user_id". Endpoints that act on
// behalf of a user (create, update, delete, like) mount this middleware.
func RequireUserHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "X-User-Id header is required", nil, nil)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalUserHeader stores X-User-Id in the context when present, but does
// not reject the request when it is missing. Public listings use this to
// compute per-viewer like status.
func OptionalUserHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-Id"); userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
