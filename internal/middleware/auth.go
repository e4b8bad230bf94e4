package middleware

import (
	"net/http"

	"depositbri/internal/domain"

	"github.com/gin-gonic/gin"
)

// UserRequired rejects sessions without a logged-in bank user.
func UserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).Has(domain.TierUser) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// UserOrAdminRequired accepts either a logged-in user or an admin session.
func UserOrAdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := GetSession(c)
		if !s.Has(domain.TierUser) && !s.Has(domain.TierAdmin) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the session's user id (must be used after UserRequired).
func GetUserID(c *gin.Context) uint {
	s := GetSession(c)
	if s.UserID == nil {
		return 0
	}
	return *s.UserID
}
