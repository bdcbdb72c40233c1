package domain

import (
	"context"
	"time"
)

// Session is the signed-in state returned by the AuthProvider after a
// successful sign-in or account creation.
type Session struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	IDToken      string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
// A zero ExpiresAt never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Account is the result of a successful account creation.
type Account struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	// Session is set when the provider signs the new user in immediately.
	Session *Session `json:"-"`
}

// AuthProvider is the external service that verifies credentials and creates
// accounts. It lives in the domain because the flows require it, not because
// this application implements it.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	CreateAccount(ctx context.Context, email, password string) (*Account, error)
}

// ProfileUpdater is implemented by providers that can store a display name
// for an account.
type ProfileUpdater interface {
	UpdateDisplayName(ctx context.Context, account *Account, displayName string) error
}
