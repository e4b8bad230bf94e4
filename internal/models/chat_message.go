package models

import "time"

// ChatMessage is one line of the user/admin conversation. Rows are append-only.
type ChatMessage struct {
	ID       uint      `gorm:"primaryKey"`
	FromUser string    `gorm:"size:100;not null"`
	ToUser   string    `gorm:"size:100;not null"`
	Pesan    string    `gorm:"type:text;not null"`
	Waktu    time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chats"
}
