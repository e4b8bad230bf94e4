// Package dto holds the JSON shapes served by the API. Field names follow the
// mobile client: pesan, waktu, isi, aktif.
package dto

import (
	"depositbri/internal/domain"
	"depositbri/internal/models"
)

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Tabungan int64  `json:"tabungan"`
	Deposito int64  `json:"deposito"`
	Email    string `json:"email"`
}

type Notification struct {
	ID     uint   `json:"id"`
	Pesan  string `json:"pesan"`
	Waktu  string `json:"waktu"`
	IsRead bool   `json:"is_read"`
}

type Popup struct {
	ID        uint   `json:"id"`
	Isi       string `json:"isi"`
	Aktif     bool   `json:"aktif"`
	CreatedAt string `json:"created_at"`
}

type ChatMessage struct {
	ID       uint   `json:"id"`
	FromUser string `json:"from_user"`
	ToUser   string `json:"to_user"`
	Pesan    string `json:"pesan"`
	Waktu    string `json:"waktu"`
}

func FromUser(u *models.User) User {
	return User{ID: u.ID, Username: u.Username, Tabungan: u.Tabungan, Deposito: u.Deposito, Email: u.Email}
}

func FromNotification(n *models.Notification) Notification {
	return Notification{ID: n.ID, Pesan: n.Pesan, Waktu: n.Waktu.Format(domain.TimeLayout), IsRead: n.IsRead}
}

func FromNotifications(list []models.Notification) []Notification {
	out := make([]Notification, 0, len(list))
	for i := range list {
		out = append(out, FromNotification(&list[i]))
	}
	return out
}

// FromPopup returns nil for a nil popup so it serializes as JSON null.
func FromPopup(p *models.Popup) *Popup {
	if p == nil {
		return nil
	}
	return &Popup{ID: p.ID, Isi: p.Isi, Aktif: p.Aktif, CreatedAt: p.CreatedAt.Format(domain.TimeLayout)}
}

func FromChatMessage(m *models.ChatMessage) ChatMessage {
	return ChatMessage{ID: m.ID, FromUser: m.FromUser, ToUser: m.ToUser, Pesan: m.Pesan, Waktu: m.Waktu.Format(domain.TimeLayout)}
}

func FromChatMessages(list []models.ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(list))
	for i := range list {
		out = append(out, FromChatMessage(&list[i]))
	}
	return out
}
