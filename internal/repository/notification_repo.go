package repository

import (
	"depositbri/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListRecent returns up to limit notifications, newest first.
func (r *NotificationRepository) ListRecent(limit int) ([]models.Notification, error) {
	list := []models.Notification{}
	err := r.db.Order("waktu DESC").Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *NotificationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Count(&count).Error
	return count, err
}
