package models

import "time"

// Notification is a broadcast message shown to the bank user. Rows are append-only.
type Notification struct {
	ID     uint      `gorm:"primaryKey"`
	Pesan  string    `gorm:"type:text;not null"`
	Waktu  time.Time `gorm:"autoCreateTime;index"`
	IsRead bool      `gorm:"not null;default:false"` // never set; kept for API consumers
}

func (Notification) TableName() string {
	return "notifications"
}
