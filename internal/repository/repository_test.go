package repository

import (
	"errors"
	"testing"

	"depositbri/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPopupRepository_ReplaceActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPopupRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "popups" SET "aktif"=\$1 WHERE aktif = \$2`).
		WithArgs(false, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "popups" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	p, err := repo.ReplaceActive("promo")
	require.NoError(t, err)
	assert.Equal(t, uint(2), p.ID)
	assert.True(t, p.Aktif)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPopupRepository_ReplaceActiveRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPopupRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "popups" SET "aktif"=\$1 WHERE aktif = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "popups" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := repo.ReplaceActive("promo")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListRecent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "pesan", "is_read"}).
		AddRow(2, "kedua", false).
		AddRow(1, "pertama", false)
	mock.ExpectQuery(`SELECT \* FROM "notifications" ORDER BY waktu DESC,id DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	list, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "kedua", list[0].Pesan)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_ListEarliest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChatRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "chats" ORDER BY waktu ASC,id ASC LIMIT \$1`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user", "to_user", "pesan"}))

	list, err := repo.ListEarliest(50)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByCredentialsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 AND pin = \$2 ORDER BY "users"."id" LIMIT \$3`).
		WithArgs("Siti Aminah", "000000", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByCredentials("Siti Aminah", "000000")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_AddToBalanceRejectsUnknownColumn(t *testing.T) {
	db, _ := newMockDB(t)
	_, err := NewUserRepository(db).AddToBalance("Siti Aminah", "pin", 1)
	assert.Error(t, err)
}
