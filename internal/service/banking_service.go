package service

import (
	"errors"
	"fmt"
	"log/slog"

	"depositbri/internal/domain"
	"depositbri/internal/models"
	"depositbri/internal/repository"
)

// ChatBroadcaster receives every chat message after it is stored.
type ChatBroadcaster interface {
	BroadcastChat(m *models.ChatMessage)
}

// BankingService is the data-access layer the HTTP handlers call. Every method touches a
// single table.
type BankingService struct {
	users         *repository.UserRepository
	notifications *repository.NotificationRepository
	popups        *repository.PopupRepository
	chats         *repository.ChatRepository
	chatFeed      ChatBroadcaster
	adminCode     string
	bankUsername  string
}

func NewBankingService(
	users *repository.UserRepository,
	notifications *repository.NotificationRepository,
	popups *repository.PopupRepository,
	chats *repository.ChatRepository,
	chatFeed ChatBroadcaster,
	adminCode, bankUsername string,
) *BankingService {
	return &BankingService{
		users:         users,
		notifications: notifications,
		popups:        popups,
		chats:         chats,
		chatFeed:      chatFeed,
		adminCode:     adminCode,
		bankUsername:  bankUsername,
	}
}

// Authenticate matches username and pin in plaintext.
func (s *BankingService) Authenticate(username, pin string) (*models.User, error) {
	u, err := s.users.GetByCredentials(username, pin)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, err
}

func (s *BankingService) AuthorizeAdmin(code string) bool {
	return code == s.adminCode
}

func (s *BankingService) GetUserByID(id uint) (*models.User, error) {
	return s.users.GetByID(id)
}

func (s *BankingService) BalanceValidation(u *models.User) BalanceValidation {
	return ComputeBalanceValidation(u.Tabungan, u.Deposito)
}

func (s *BankingService) ListRecentNotifications(limit int) ([]models.Notification, error) {
	return s.notifications.ListRecent(limit)
}

// ActivePopup returns nil when no popup is active.
func (s *BankingService) ActivePopup() (*models.Popup, error) {
	return s.popups.GetActive()
}

// AdjustTabungan adds amount to the bank user's savings and returns the new balance.
func (s *BankingService) AdjustTabungan(amount int64) (int64, error) {
	u, err := s.users.AddToBalance(s.bankUsername, "tabungan", amount)
	if err != nil {
		return 0, err
	}
	slog.Info("tabungan adjusted", "username", u.Username, "amount", amount, "new_balance", u.Tabungan)
	return u.Tabungan, nil
}

// AdjustDeposito adds amount to the bank user's deposit and returns the new balance.
func (s *BankingService) AdjustDeposito(amount int64) (int64, error) {
	u, err := s.users.AddToBalance(s.bankUsername, "deposito", amount)
	if err != nil {
		return 0, err
	}
	slog.Info("deposito adjusted", "username", u.Username, "amount", amount, "new_balance", u.Deposito)
	return u.Deposito, nil
}

func (s *BankingService) PostNotification(text string) (*models.Notification, error) {
	n := &models.Notification{Pesan: text}
	if err := s.notifications.Create(n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *BankingService) ReplaceActivePopup(text string) (*models.Popup, error) {
	p, err := s.popups.ReplaceActive(text)
	if err != nil {
		return nil, fmt.Errorf("replace popup: %w", err)
	}
	return p, nil
}

// ListChatMessages returns the first limit messages, oldest first. The window is fixed at
// the start of the conversation, not the latest messages.
func (s *BankingService) ListChatMessages(limit int) ([]models.ChatMessage, error) {
	return s.chats.ListEarliest(limit)
}

func (s *BankingService) PostChatMessage(from, to, text string) (*models.ChatMessage, error) {
	m := &models.ChatMessage{FromUser: from, ToUser: to, Pesan: text}
	if err := s.chats.Create(m); err != nil {
		return nil, fmt.Errorf("create chat message: %w", err)
	}
	if s.chatFeed != nil {
		s.chatFeed.BroadcastChat(m)
	}
	return m, nil
}

// ChatParticipants infers sender and recipient from the session tier. Admin wins when a
// session holds both flags.
func ChatParticipants(tier domain.Tier, username string) (from, to string) {
	if tier == domain.TierAdmin {
		return domain.ChatAdmin, domain.ChatUser
	}
	if username == "" {
		username = domain.ChatUser
	}
	return username, domain.ChatAdmin
}
