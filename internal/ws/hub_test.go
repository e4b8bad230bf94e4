package ws

import (
	"encoding/json"
	"testing"
	"time"

	"depositbri/internal/domain"
	"depositbri/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHub_BroadcastChat(t *testing.T) {
	hub := NewChatHub()
	user := NewClient(domain.TierUser, "Siti Aminah")
	admin := NewClient(domain.TierAdmin, domain.ChatAdmin)
	hub.Register(user)
	hub.Register(admin)
	require.Equal(t, 2, hub.ClientCount())

	hub.BroadcastChat(&models.ChatMessage{
		ID:       7,
		FromUser: "Siti Aminah",
		ToUser:   domain.ChatAdmin,
		Pesan:    "Halo",
		Waktu:    time.Date(2025, 3, 9, 14, 5, 0, 0, time.UTC),
	})

	for _, c := range []*Client{user, admin} {
		var ev ChatEvent
		require.NoError(t, json.Unmarshal(<-c.Send, &ev))
		assert.Equal(t, EventMessage, ev.Type)
		assert.Equal(t, uint(7), ev.ID)
		assert.Equal(t, "Halo", ev.Pesan)
		assert.Equal(t, "2025-03-09 14:05:00", ev.Waktu)
	}
}

func TestClient_CloseUnregisters(t *testing.T) {
	hub := NewHub()
	c := NewClient(domain.TierUser, "Siti Aminah")
	hub.Register(c)

	c.Close()
	c.Close()
	assert.Zero(t, hub.ClientCount())
	_, open := <-c.Send
	assert.False(t, open)

	// Broadcasting after close must not panic.
	hub.BroadcastAll(map[string]string{"type": EventMessage})
}

func TestHub_SlowClientDropsMessages(t *testing.T) {
	hub := NewHub()
	c := NewClient(domain.TierAdmin, domain.ChatAdmin)
	hub.Register(c)
	defer c.Close()

	for i := 0; i < cap(c.Send)+10; i++ {
		hub.BroadcastAll(i)
	}
	assert.Len(t, c.Send, cap(c.Send))
}
