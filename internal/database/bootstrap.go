package database

import (
	"log/slog"

	"depositbri/config"
	"depositbri/internal/domain"
	"depositbri/internal/models"
	"depositbri/internal/repository"

	"gorm.io/gorm"
)

// Bootstrap seeds the bank user, sample notifications and the welcome popup when the
// user does not exist yet. It reports whether anything was created.
func Bootstrap(db *gorm.DB, bank *config.BankConfig) (bool, error) {
	seeded := false
	err := db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		count, err := users.CountByUsername(bank.Username)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		user := &models.User{
			Username: bank.Username,
			PIN:      bank.PIN,
			Tabungan: domain.SeedTabungan,
			Deposito: domain.SeedDeposito,
			Email:    bank.Email,
		}
		if err := users.Create(user); err != nil {
			return err
		}
		notifications := make([]models.Notification, 0, len(domain.SeedNotifications))
		for _, pesan := range domain.SeedNotifications {
			notifications = append(notifications, models.Notification{Pesan: pesan})
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Popup{Isi: domain.SeedPopup, Aktif: true}).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		slog.Info("default user and sample data created", "username", bank.Username)
	}
	return seeded, nil
}
