package api

import (
	"net/http" // HTTP status codes

	"github.com/RAINBOBOBO/Warbler/internal/middleware" // Current user resolution
	"github.com/RAINBOBOBO/Warbler/internal/service"    // Domain services
	"github.com/RAINBOBOBO/Warbler/internal/session"    // Session token issuing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for signup
type SignupRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	ImageURL string `json:"image_url"`                   // Optional profile image
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// SignupHandler creates an account and signs the new user in
func SignupHandler(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.Signup(c.Request.Context(), req.Username, req.Password, req.Email, req.ImageURL)
		if err != nil {
			serviceError(c, err)
			return
		}
		// Signup doubles as login: issue the session token right away
		token, err := session.Issue(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // New user ID
			"username": user.Username, // New username
		}).Info("User signed up") // Log signup
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// LoginHandler authenticates a user and returns a session token. Unknown
// username and wrong password produce the same response.
func LoginHandler(users *service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			serviceError(c, err)
			return
		}
		if user == nil {
			// Identical response for unknown username and wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		token, err := session.Issue(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// LogoutHandler ends a session. The token is client-held, so the server only
// acknowledges; the client discards the token.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // Signing-out user
		}).Info("User logged out") // Log logout
		c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
	}
}
