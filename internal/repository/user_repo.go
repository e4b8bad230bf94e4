package repository

import (
	"errors"
	"fmt"

	"depositbri/internal/domain"
	"depositbri/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// GetByCredentials matches username and pin exactly.
func (r *UserRepository) GetByCredentials(username, pin string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ? AND pin = ?", username, pin).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// AddToBalance adds amount to column ("tabungan" or "deposito") in a single UPDATE and
// returns the row as stored afterwards.
func (r *UserRepository) AddToBalance(username, column string, amount int64) (*models.User, error) {
	if column != "tabungan" && column != "deposito" {
		return nil, fmt.Errorf("unknown balance column %q", column)
	}
	u, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	// RowsAffected is 0 on MySQL when amount is 0, so existence is checked above.
	if err := r.db.Model(u).Update(column, gorm.Expr(column+" + ?", amount)).Error; err != nil {
		return nil, err
	}
	return r.GetByID(u.ID)
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	return err
}
