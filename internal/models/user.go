package models

import "time"

// User is the banking customer. Exactly one row exists in normal operation.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	PIN       string `gorm:"column:pin;size:10;not null"` // compared in plaintext
	Tabungan  int64  `gorm:"not null;default:0"`
	Deposito  int64  `gorm:"not null;default:0"`
	Email     string `gorm:"size:120;default:'siti.aminah@email.com'"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
