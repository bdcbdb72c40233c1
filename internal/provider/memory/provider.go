// Package memory is an in-process stand-in for the hosted auth provider,
// used for local development and tests. It answers with the same error codes
// as the Firebase client.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sosyaltarif/tarifauth/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer        = "tarifauth-memory"
	tokenLifetime = time.Hour
)

type user struct {
	id          string
	email       string
	hash        []byte
	displayName string
	disabled    bool
	createdAt   time.Time
}

// Provider implements domain.AuthProvider and domain.ProfileUpdater.
type Provider struct {
	mu     sync.RWMutex
	users  map[string]*user // by lower-cased email
	secret []byte
	cost   int
	now    func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithBcryptCost sets the hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(p *Provider) { p.cost = cost }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// New creates an empty provider that signs ID tokens with secret.
func New(secret string, opts ...Option) *Provider {
	p := &Provider{
		users:  make(map[string]*user),
		secret: []byte(secret),
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignIn implements domain.AuthProvider.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.ProviderError{Code: domain.CodeNetworkError, Message: err.Error(), Err: err}
	}
	if !strings.Contains(email, "@") {
		return nil, domain.NewProviderError(domain.CodeInvalidEmail, "INVALID_EMAIL")
	}

	p.mu.RLock()
	u, ok := p.users[normalize(email)]
	p.mu.RUnlock()
	if !ok {
		return nil, domain.NewProviderError(domain.CodeUserNotFound, "EMAIL_NOT_FOUND")
	}
	if u.disabled {
		return nil, domain.NewProviderError(domain.CodeUserDisabled, "USER_DISABLED")
	}
	if err := bcrypt.CompareHashAndPassword(u.hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.NewProviderError(domain.CodeWrongPassword, "INVALID_PASSWORD")
		}
		return nil, &domain.ProviderError{Code: domain.CodeInternalError, Message: err.Error(), Err: err}
	}
	return p.issue(u)
}

// CreateAccount implements domain.AuthProvider. The new user is signed in.
func (p *Provider) CreateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.ProviderError{Code: domain.CodeNetworkError, Message: err.Error(), Err: err}
	}
	if !strings.Contains(email, "@") {
		return nil, domain.NewProviderError(domain.CodeInvalidEmail, "INVALID_EMAIL")
	}
	if len(password) < 6 {
		return nil, domain.NewProviderError(domain.CodeWeakPassword, "WEAK_PASSWORD : Password should be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, &domain.ProviderError{Code: domain.CodeInternalError, Message: err.Error(), Err: err}
	}

	key := normalize(email)
	p.mu.Lock()
	if _, exists := p.users[key]; exists {
		p.mu.Unlock()
		return nil, domain.NewProviderError(domain.CodeEmailAlreadyInUse, "EMAIL_EXISTS")
	}
	u := &user{
		id:        uuid.NewString(),
		email:     strings.TrimSpace(email),
		hash:      hash,
		createdAt: p.now(),
	}
	p.users[key] = u
	p.mu.Unlock()

	session, err := p.issue(u)
	if err != nil {
		return nil, err
	}
	return &domain.Account{
		UserID:    u.id,
		Email:     u.email,
		CreatedAt: u.createdAt,
		Session:   session,
	}, nil
}

// UpdateDisplayName implements domain.ProfileUpdater.
func (p *Provider) UpdateDisplayName(ctx context.Context, account *domain.Account, displayName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.users[normalize(account.Email)]
	if !ok || u.id != account.UserID {
		return domain.NewProviderError(domain.CodeUserNotFound, "USER_NOT_FOUND")
	}
	u.displayName = displayName
	return nil
}

// Disable marks an account as disabled so sign-in fails with user-disabled.
func (p *Provider) Disable(email string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.users[normalize(email)]
	if ok {
		u.disabled = true
	}
	return ok
}

func (p *Provider) issue(u *user) (*domain.Session, error) {
	now := p.now()
	expires := now.Add(tokenLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   issuer,
		"sub":   u.id,
		"email": u.email,
		"name":  u.displayName,
		"iat":   now.Unix(),
		"exp":   expires.Unix(),
		"jti":   uuid.NewString(),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign id token: %w", err)
	}
	return &domain.Session{
		UserID:       u.id,
		Email:        u.email,
		DisplayName:  u.displayName,
		IDToken:      signed,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    expires,
	}, nil
}

// VerifyIDToken checks a token issued by this provider and returns its
// subject and email.
func (p *Provider) VerifyIDToken(idToken string) (userID, email string, err error) {
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(idToken, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return "", "", fmt.Errorf("invalid id token: %w", err)
	}
	userID, _ = claims["sub"].(string)
	email, _ = claims["email"].(string)
	return userID, email, nil
}
