package handler

import (
	"net/http"

	"depositbri/internal/domain"
	"depositbri/internal/dto"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.BankingService
}

func NewNotificationHandler(svc *service.BankingService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/notifications: the 10 newest, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.svc.ListRecentNotifications(domain.RecentNotificationsLimit)
	if err != nil {
		internalError(c, "failed to list notifications", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromNotifications(list))
}
