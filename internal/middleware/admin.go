package middleware

import (
	"net/http"

	"depositbri/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks that the session carries the admin flag.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).Has(domain.TierAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}
		c.Next()
	}
}
