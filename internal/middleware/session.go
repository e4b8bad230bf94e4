package middleware

import (
	"depositbri/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxSession = "session"
	ctxStore   = "session_store"
)

// LoadSession attaches the caller's session to the context.
func LoadSession(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxStore, store)
		c.Set(ctxSession, store.Load(c.Request))
		c.Next()
	}
}

// GetSession returns the session loaded by LoadSession, or an empty one.
func GetSession(c *gin.Context) *auth.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*auth.Session); ok {
			return s
		}
	}
	s := &auth.Session{}
	c.Set(ctxSession, s)
	return s
}

// SaveSession writes the current session back as a cookie. Call it before writing the body.
func SaveSession(c *gin.Context) error {
	v, ok := c.Get(ctxStore)
	if !ok {
		return nil
	}
	return v.(*auth.Store).Save(c.Writer, GetSession(c))
}
