package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUserID = "user_id"

// UserIDFromContext returns the current user ID set by RequireToken or
// OptionalToken. 0 if the request is anonymous.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// RequireToken returns a middleware that rejects requests lacking a valid
// bearer token and sets the current user ID in context.
func RequireToken(tokens *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, ok := tokens.Resolve(c.Request.Context(), token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

// OptionalToken resolves a bearer token when present but lets anonymous
// requests through. Used by /search to pick owner vs public scope.
func OptionalToken(tokens *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c); token != "" {
			if userID, ok := tokens.Resolve(c.Request.Context(), token); ok {
				c.Set(contextKeyUserID, userID)
			}
		}
		c.Next()
	}
}
