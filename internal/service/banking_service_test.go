package service_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"depositbri/internal/domain"
	"depositbri/internal/models"
	"depositbri/internal/repository"
	"depositbri/internal/service"
	"depositbri/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingFeed struct {
	mu   sync.Mutex
	sent []models.ChatMessage
}

func (f *recordingFeed) BroadcastChat(m *models.ChatMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, *m)
}

func newService(t *testing.T, db *gorm.DB, feed service.ChatBroadcaster) *service.BankingService {
	t.Helper()
	cfg := testutils.Config()
	return service.NewBankingService(
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		repository.NewPopupRepository(db),
		repository.NewChatRepository(db),
		feed,
		cfg.Admin.Code,
		cfg.Bank.Username,
	)
}

func bankUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, db.Where("username = ?", "Siti Aminah").First(&u).Error)
	return u
}

func TestAuthenticate(t *testing.T) {
	db := testutils.NewSeededDB(t)
	svc := newService(t, db, nil)

	u, err := svc.Authenticate("Siti Aminah", "112233")
	require.NoError(t, err)
	assert.Equal(t, "Siti Aminah", u.Username)

	for _, creds := range [][2]string{
		{"Siti Aminah", "000000"},
		{"siti aminah", "112233"},
		{"Budi", "112233"},
		{"", ""},
	} {
		u, err := svc.Authenticate(creds[0], creds[1])
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, creds)
		assert.Nil(t, u)
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	svc := newService(t, testutils.NewDB(t), nil)
	assert.True(t, svc.AuthorizeAdmin("011090"))
	assert.False(t, svc.AuthorizeAdmin("11090"))
	assert.False(t, svc.AuthorizeAdmin(""))
}

func TestGetUserByID(t *testing.T) {
	db := testutils.NewSeededDB(t)
	svc := newService(t, db, nil)
	seeded := bankUser(t, db)

	u, err := svc.GetUserByID(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Username, u.Username)

	_, err = svc.GetUserByID(seeded.ID + 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdjustBalances(t *testing.T) {
	db := testutils.NewSeededDB(t)
	svc := newService(t, db, nil)

	for _, amount := range []int64{50000, -2000000, 0, 1} {
		before := bankUser(t, db)

		balance, err := svc.AdjustTabungan(amount)
		require.NoError(t, err)
		after := bankUser(t, db)
		assert.Equal(t, before.Tabungan+amount, balance)
		assert.Equal(t, balance, after.Tabungan)
		assert.Equal(t, before.Deposito, after.Deposito)
		assert.Equal(t, before.PIN, after.PIN)
		assert.Equal(t, before.Email, after.Email)

		balance, err = svc.AdjustDeposito(amount)
		require.NoError(t, err)
		final := bankUser(t, db)
		assert.Equal(t, after.Deposito+amount, balance)
		assert.Equal(t, balance, final.Deposito)
		assert.Equal(t, after.Tabungan, final.Tabungan)
	}
}

func TestAdjustBalances_MissingUser(t *testing.T) {
	svc := newService(t, testutils.NewDB(t), nil)
	_, err := svc.AdjustTabungan(10)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = svc.AdjustDeposito(10)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReplaceActivePopup(t *testing.T) {
	db := testutils.NewSeededDB(t)
	svc := newService(t, db, nil)
	popups := repository.NewPopupRepository(db)

	first, err := svc.ActivePopup()
	require.NoError(t, err)
	require.NotNil(t, first)

	for i := 1; i <= 3; i++ {
		text := fmt.Sprintf("promo %d", i)
		before, err := popups.Count()
		require.NoError(t, err)

		_, err = svc.ReplaceActivePopup(text)
		require.NoError(t, err)

		active, err := popups.CountActive()
		require.NoError(t, err)
		assert.Equal(t, int64(1), active)

		after, err := popups.Count()
		require.NoError(t, err)
		assert.Equal(t, before+1, after)

		p, err := svc.ActivePopup()
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, text, p.Isi)
		assert.True(t, p.Aktif)
	}

	var old models.Popup
	require.NoError(t, db.First(&old, first.ID).Error)
	assert.False(t, old.Aktif)
}

func TestActivePopup_None(t *testing.T) {
	svc := newService(t, testutils.NewDB(t), nil)
	p, err := svc.ActivePopup()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListRecentNotifications(t *testing.T) {
	db := testutils.NewDB(t)
	svc := newService(t, db, nil)

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 11; i++ {
		require.NoError(t, db.Create(&models.Notification{Pesan: fmt.Sprintf("n%02d", i), Waktu: base.Add(time.Duration(i) * time.Minute)}).Error)
	}

	list, err := svc.ListRecentNotifications(domain.RecentNotificationsLimit)
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, "n10", list[0].Pesan)
	assert.Equal(t, "n01", list[9].Pesan)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Waktu.After(list[i-1].Waktu))
	}

	total, err := repository.NewNotificationRepository(db).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
}

func TestPostNotification(t *testing.T) {
	db := testutils.NewDB(t)
	svc := newService(t, db, nil)

	n, err := svc.PostNotification("Bunga naik")
	require.NoError(t, err)
	assert.NotZero(t, n.ID)
	assert.False(t, n.IsRead)

	list, err := svc.ListRecentNotifications(10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bunga naik", list[0].Pesan)
}

func TestChatMessages_EarliestWindow(t *testing.T) {
	db := testutils.NewDB(t)
	feed := &recordingFeed{}
	svc := newService(t, db, feed)

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 55; i++ {
		require.NoError(t, db.Create(&models.ChatMessage{
			FromUser: "Siti Aminah", ToUser: "Admin",
			Pesan: fmt.Sprintf("m%02d", i), Waktu: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	list, err := svc.ListChatMessages(domain.ChatMessagesLimit)
	require.NoError(t, err)
	require.Len(t, list, 50)
	assert.Equal(t, "m00", list[0].Pesan)
	assert.Equal(t, "m49", list[49].Pesan)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Waktu.Before(list[i-1].Waktu))
	}

	m, err := svc.PostChatMessage("Admin", "User", "halo")
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	require.Len(t, feed.sent, 1)
	assert.Equal(t, "halo", feed.sent[0].Pesan)
	assert.Equal(t, "Admin", feed.sent[0].FromUser)
}

func TestChatParticipants(t *testing.T) {
	from, to := service.ChatParticipants(domain.TierAdmin, "Siti Aminah")
	assert.Equal(t, "Admin", from)
	assert.Equal(t, "User", to)

	from, to = service.ChatParticipants(domain.TierUser, "Siti Aminah")
	assert.Equal(t, "Siti Aminah", from)
	assert.Equal(t, "Admin", to)

	from, to = service.ChatParticipants(domain.TierUser, "")
	assert.Equal(t, "User", from)
	assert.Equal(t, "Admin", to)
}
