package models

import "time"

// Popup is an announcement. At most one row has Aktif=true at any time.
type Popup struct {
	ID        uint   `gorm:"primaryKey"`
	Isi       string `gorm:"type:text;not null"`
	Aktif     bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}

func (Popup) TableName() string {
	return "popups"
}
