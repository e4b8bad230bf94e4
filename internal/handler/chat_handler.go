package handler

import (
	"net/http"

	"depositbri/internal/domain"
	"depositbri/internal/dto"
	"depositbri/internal/middleware"
	"depositbri/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *service.BankingService
}

func NewChatHandler(svc *service.BankingService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Messages handles GET /api/chat/messages: the first 50 messages, oldest first.
func (h *ChatHandler) Messages(c *gin.Context) {
	list, err := h.svc.ListChatMessages(domain.ChatMessagesLimit)
	if err != nil {
		internalError(c, "failed to list messages", err)
		return
	}
	c.JSON(http.StatusOK, dto.FromChatMessages(list))
}

// Send handles POST /api/chat/send. Sender and recipient come from the session.
func (h *ChatHandler) Send(c *gin.Context) {
	var req MessageRequest
	if !bindBody(c, &req) {
		return
	}
	s := middleware.GetSession(c)
	from, to := service.ChatParticipants(s.Tier(), s.Username)
	if _, err := h.svc.PostChatMessage(from, to, req.Message); err != nil {
		internalError(c, "failed to send message", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
