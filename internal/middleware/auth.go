package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/RAINBOBOBO/Warbler/internal/domain"  // Domain models
	"github.com/RAINBOBOBO/Warbler/internal/session" // Session token resolution

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// userKey is the gin context key holding the resolved current user.
const userKey = "currentUser"

// resolve extracts the bearer token and resolves it to a user. A missing or
// malformed header, an invalid token and a deleted account all resolve to
// nil (anonymous); only a store failure is an error.
func resolve(c *gin.Context, db *gorm.DB, secret string) (*domain.User, error) {
	authHeader := c.GetHeader("Authorization") // Get Authorization header
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, nil
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
	return session.CurrentUser(c.Request.Context(), db, tokenStr, secret)
}

// RequireUser rejects anonymous requests with 401 and stores the resolved
// user in the gin context for the handlers behind it.
func RequireUser(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolve(c, db, secret)
		if err != nil {
			// Store failure is fatal for the request, never treated as logged-in
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access unauthorized."})
			return
		}
		c.Set(userKey, user) // Store current user in context
		c.Next()             // Proceed to the next handler
	}
}

// OptionalUser resolves the current user when a valid token is present and
// passes anonymous requests through untouched. Used by the home feed.
func OptionalUser(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolve(c, db, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}
		if user != nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the resolved user from the gin context, or nil for an
// anonymous request.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
