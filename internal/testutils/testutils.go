// Package testutils provides an in-memory database and a ready config for tests.
package testutils

import (
	"fmt"
	"testing"
	"time"

	"depositbri/config"
	"depositbri/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// NewSeededDB is NewDB plus the startup bootstrap.
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	_, err := database.Bootstrap(db, &Config().Bank)
	require.NoError(t, err)
	return db
}

// Config mirrors the defaults a fresh deployment runs with.
func Config() *config.Config {
	return &config.Config{
		Env:      "test",
		Server:   config.ServerConfig{Port: "0", ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Database: config.DatabaseConfig{URL: "sqlite://:memory:", MaxIdleConns: 1, MaxOpenConns: 1, ConnMaxLifetime: time.Minute, AutoMigrate: true},
		Session:  config.SessionConfig{Secret: "test-secret", CookieName: "session"},
		Bank:     config.BankConfig{Username: "Siti Aminah", PIN: "112233", Email: "siti.aminah@email.com"},
		Admin:    config.AdminConfig{Code: "011090"},
		RateLimit: config.RateLimitConfig{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
		Log: config.LogConfig{Level: "error", Format: "text", TimeFormat: time.DateTime, Prefix: "[test]"},
	}
}
