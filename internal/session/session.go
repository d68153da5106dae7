package session

import (
	"context" // Context for store lookups
	"errors"  // Error inspection
	"time"    // Time for token expiration

	"github.com/RAINBOBOBO/Warbler/internal/domain" // Domain models

	"github.com/golang-jwt/jwt/v5" // JWT library
	"gorm.io/gorm"                 // GORM ORM library
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 24 * time.Hour

// Claims carried by a session token: exactly one custom field, the
// signed-in user id.
type Claims struct {
	UserID               uint `json:"user_id"` // Current user id
	jwt.RegisteredClaims      // Standard JWT claims
}

// Issue creates a signed session token for a given user ID
func Issue(userID uint, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// Parse validates a session token string and returns its claims
func Parse(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}

// CurrentUser resolves a session token to the signed-in user. An invalid or
// expired token, or a token whose user id no longer exists (deleted account),
// resolves to (nil, nil): logged out, never a dangling reference. Only a store
// failure is reported as an error.
func CurrentUser(ctx context.Context, db *gorm.DB, tokenStr, secret string) (*domain.User, error) {
	claims, err := Parse(tokenStr, secret)
	if err != nil {
		return nil, nil // Bad token means no user
	}
	var user domain.User
	if err := db.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Account gone, treat as logged out
		}
		return nil, err // Store failure propagates
	}
	return &user, nil
}
