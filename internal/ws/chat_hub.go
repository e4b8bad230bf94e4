package ws

import (
	"depositbri/internal/dto"
	"depositbri/internal/models"
)

const EventMessage = "message"

// ChatEvent is what chat clients receive for every stored message.
type ChatEvent struct {
	Type string `json:"type"`
	dto.ChatMessage
}

// ChatHub fans stored chat messages out to the connected user and admin screens.
type ChatHub struct {
	*Hub
}

func NewChatHub() *ChatHub {
	return &ChatHub{Hub: NewHub()}
}

func (h *ChatHub) BroadcastChat(m *models.ChatMessage) {
	h.BroadcastAll(ChatEvent{Type: EventMessage, ChatMessage: dto.FromChatMessage(m)})
}
