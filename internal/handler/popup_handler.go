package handler

import (
	"net/http"

	"depositbri/internal/dto"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type PopupHandler struct {
	svc *service.BankingService
}

func NewPopupHandler(svc *service.BankingService) *PopupHandler {
	return &PopupHandler{svc: svc}
}

// Active handles GET /api/popup. The body is null when no popup is active.
func (h *PopupHandler) Active(c *gin.Context) {
	p, err := h.svc.ActivePopup()
	if err != nil {
		internalError(c, "failed to load popup", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPopup(p))
}
