package handler

import (
	"errors"
	"net/http"

	"depositbri/internal/domain"
	"depositbri/internal/dto"
	"depositbri/internal/middleware"
	"depositbri/internal/models"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.BankingService
}

func NewUserHandler(svc *service.BankingService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserData handles GET /api/user-data.
func (h *UserHandler) UserData(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(u))
}

// BalanceValidation handles GET /api/balance-validation.
func (h *UserHandler) BalanceValidation(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.BalanceValidation(u))
}

func (h *UserHandler) currentUser(c *gin.Context) (*models.User, bool) {
	u, err := h.svc.GetUserByID(middleware.GetUserID(c))
	if errors.Is(err, domain.ErrUserNotFound) {
		notFoundUser(c)
		return nil, false
	}
	if err != nil {
		internalError(c, "failed to load user", err)
		return nil, false
	}
	return u, true
}
