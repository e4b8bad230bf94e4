package handler

import (
	"errors"
	"net/http"

	"depositbri/internal/auth"
	"depositbri/internal/domain"
	"depositbri/internal/middleware"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.BankingService
}

func NewAuthHandler(svc *service.BankingService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type LoginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type AdminAccessRequest struct {
	Code string `json:"code"`
}

// Login handles POST /api/login. Wrong credentials are reported with 200 and success=false.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindBody(c, &req) {
		return
	}
	u, err := h.svc.Authenticate(req.Username, req.PIN)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Username atau PIN salah"})
		return
	}
	if err != nil {
		internalError(c, "login failed", err)
		return
	}
	s := middleware.GetSession(c)
	_ = s.Set(auth.KeyUserID, u.ID)
	_ = s.Set(auth.KeyUsername, u.Username)
	if err := middleware.SaveSession(c); err != nil {
		internalError(c, "login failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login berhasil"})
}

// AdminAccess handles POST /api/admin-access.
func (h *AuthHandler) AdminAccess(c *gin.Context) {
	var req AdminAccessRequest
	if !bindBody(c, &req) {
		return
	}
	if !h.svc.AuthorizeAdmin(req.Code) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Kode admin salah"})
		return
	}
	_ = middleware.GetSession(c).Set(auth.KeyAdminAccess, true)
	if err := middleware.SaveSession(c); err != nil {
		internalError(c, "admin access failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /api/logout and drops every session flag.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.GetSession(c).Clear()
	if err := middleware.SaveSession(c); err != nil {
		internalError(c, "logout failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
