package handler

import (
	"encoding/json"
	"log/slog"

	"depositbri/internal/middleware"
	"depositbri/internal/service"
	"depositbri/internal/ws"

	"github.com/gin-gonic/gin"
)

type chatFrame struct {
	Type  string `json:"type"`
	Pesan string `json:"pesan"`
}

// UpgradeChatWS upgrades GET /ws/chat for a user or admin session. The socket receives
// every stored chat message; {"type":"message","pesan":"..."} frames are stored and
// broadcast like POST /api/chat/send.
func UpgradeChatWS(svc *service.BankingService, hub *ws.ChatHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := middleware.GetSession(c)
		tier := s.Tier()
		from, to := service.ChatParticipants(tier, s.Username)

		// Registered before the handshake so no message stored after it is missed.
		client := ws.NewClient(tier, from)
		hub.Register(client)
		defer client.Close()
		conn, err := ws.Upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		slog.Debug("chat socket connected", "client_id", client.ID, "tier", tier, "name", from)

		ws.Serve(conn, client, func(raw []byte) {
			var frame chatFrame
			if json.Unmarshal(raw, &frame) != nil || frame.Type != ws.EventMessage {
				return
			}
			if _, err := svc.PostChatMessage(from, to, frame.Pesan); err != nil {
				slog.Error("chat socket message not stored", "client_id", client.ID, "error", err)
			}
		})
		slog.Debug("chat socket closed", "client_id", client.ID)
	}
}
