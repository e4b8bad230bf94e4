package repository

import (
	"depositbri/internal/models"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Create(m *models.ChatMessage) error {
	return r.db.Create(m).Error
}

// ListEarliest returns the first limit messages of the conversation, oldest first.
func (r *ChatRepository) ListEarliest(limit int) ([]models.ChatMessage, error) {
	list := []models.ChatMessage{}
	err := r.db.Order("waktu ASC").Order("id ASC").Limit(limit).Find(&list).Error
	return list, err
}
