package repository

import (
	"errors"

	"depositbri/internal/models"

	"gorm.io/gorm"
)

type PopupRepository struct {
	db *gorm.DB
}

func NewPopupRepository(db *gorm.DB) *PopupRepository {
	return &PopupRepository{db: db}
}

// GetActive returns the active popup, or nil when none is active.
func (r *PopupRepository) GetActive() (*models.Popup, error) {
	var p models.Popup
	err := r.db.Where("aktif = ?", true).Order("id DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ReplaceActive deactivates every popup and inserts isi as the only active one.
// Rows are never deleted.
func (r *PopupRepository) ReplaceActive(isi string) (*models.Popup, error) {
	p := &models.Popup{Isi: isi, Aktif: true}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Popup{}).Where("aktif = ?", true).Update("aktif", false).Error; err != nil {
			return err
		}
		return tx.Create(p).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PopupRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Popup{}).Where("aktif = ?", true).Count(&count).Error
	return count, err
}

func (r *PopupRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Popup{}).Count(&count).Error
	return count, err
}
