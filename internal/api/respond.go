package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"github.com/RAINBOBOBO/Warbler/internal/service"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// serviceError maps the service error taxonomy onto HTTP responses. Anything
// outside the taxonomy is a store failure: logged and surfaced as 500, never
// swallowed.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrDuplicateKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already taken"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access unauthorized."})
	case errors.Is(err, service.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed") // Log store failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
