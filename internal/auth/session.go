package auth

import (
	"errors"
	"fmt"
	"net/http"

	"depositbri/config"
	"depositbri/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Session keys.
const (
	KeyUserID      = "user_id"
	KeyUsername    = "username"
	KeyAdminAccess = "admin_access"
)

const issuer = "deposit-bri"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrUnknownKey     = errors.New("unknown session key")
)

// Session is the per-browser state: at most a user id, a display name and the admin flag.
type Session struct {
	UserID      *uint
	Username    string
	AdminAccess bool
}

// Set stores value under key. user_id takes a uint, username a string, admin_access a bool.
func (s *Session) Set(key string, value any) error {
	switch key {
	case KeyUserID:
		id, ok := value.(uint)
		if !ok {
			return fmt.Errorf("%s: want uint, got %T", key, value)
		}
		s.UserID = &id
	case KeyUsername:
		name, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s: want string, got %T", key, value)
		}
		s.Username = name
	case KeyAdminAccess:
		flag, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: want bool, got %T", key, value)
		}
		s.AdminAccess = flag
	default:
		return ErrUnknownKey
	}
	return nil
}

// Get returns the value under key and whether it is present.
func (s *Session) Get(key string) (any, bool) {
	switch key {
	case KeyUserID:
		if s.UserID == nil {
			return nil, false
		}
		return *s.UserID, true
	case KeyUsername:
		if s.Username == "" {
			return nil, false
		}
		return s.Username, true
	case KeyAdminAccess:
		if !s.AdminAccess {
			return nil, false
		}
		return true, true
	}
	return nil, false
}

func (s *Session) Clear() {
	*s = Session{}
}

func (s *Session) Empty() bool {
	return s.UserID == nil && s.Username == "" && !s.AdminAccess
}

// Has reports whether the session carries tier. The admin flag does not imply a user
// login: admin and user are granted independently.
func (s *Session) Has(t domain.Tier) bool {
	switch t {
	case domain.TierAnonymous:
		return true
	case domain.TierUser:
		return s.UserID != nil
	case domain.TierAdmin:
		return s.AdminAccess
	}
	return false
}

// Tier returns the highest tier held.
func (s *Session) Tier() domain.Tier {
	switch {
	case s.AdminAccess:
		return domain.TierAdmin
	case s.UserID != nil:
		return domain.TierUser
	default:
		return domain.TierAnonymous
	}
}

type sessionClaims struct {
	UserID      *uint  `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	AdminAccess bool   `json:"admin_access,omitempty"`
	jwt.RegisteredClaims
}

// Store keeps sessions client-side in an HS256-signed cookie. Cookies have no expiry
// and live as long as the browser session.
type Store struct {
	secret     []byte
	cookieName string
	secure     bool
}

func NewStore(cfg *config.SessionConfig) *Store {
	return &Store{secret: []byte(cfg.Secret), cookieName: cfg.CookieName, secure: cfg.Secure}
}

func (st *Store) CookieName() string { return st.cookieName }

func (st *Store) Encode(s *Session) (string, error) {
	claims := sessionClaims{
		UserID:      s.UserID,
		Username:    s.Username,
		AdminAccess: s.AdminAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(st.secret)
}

func (st *Store) Decode(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return st.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, ErrInvalidSession
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	return &Session{UserID: claims.UserID, Username: claims.Username, AdminAccess: claims.AdminAccess}, nil
}

// Load returns the request's session, or an empty one when the cookie is missing or
// fails verification.
func (st *Store) Load(r *http.Request) *Session {
	c, err := r.Cookie(st.cookieName)
	if err != nil || c.Value == "" {
		return &Session{}
	}
	s, err := st.Decode(c.Value)
	if err != nil {
		return &Session{}
	}
	return s
}

// Save writes s back to the client. An empty session deletes the cookie.
func (st *Store) Save(w http.ResponseWriter, s *Session) error {
	if s.Empty() {
		http.SetCookie(w, st.cookie("", -1))
		return nil
	}
	value, err := st.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, st.cookie(value, 0))
	return nil
}

func (st *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     st.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   st.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
