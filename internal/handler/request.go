package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindBody decodes an optional JSON body into req. A missing body leaves req at its
// zero value; a malformed one is answered with 400 and false is returned.
func bindBody(c *gin.Context, req any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// internalError logs err and answers 500 with msg only.
func internalError(c *gin.Context, msg string, err error) {
	slog.ErrorContext(c.Request.Context(), msg, "error", err, "path", c.FullPath(), "request_id", c.GetString("request_id"))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func notFoundUser(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}
