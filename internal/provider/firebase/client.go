// Package firebase talks to the Firebase Authentication REST API (Identity
// Toolkit v1), or to the local auth emulator.
package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sosyaltarif/tarifauth/internal/domain"
)

// DefaultBaseURL is the production Identity Toolkit endpoint.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Client implements domain.AuthProvider and domain.ProfileUpdater.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another endpoint, e.g. the emulator at
// http://localhost:9099/identitytoolkit.googleapis.com/v1.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// NewClient creates a client for the project owning apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type updateRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SignIn implements domain.AuthProvider.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp authResponse
	err := c.call(ctx, "accounts:signInWithPassword", credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return c.session(resp), nil
}

// CreateAccount implements domain.AuthProvider. The new user is signed in.
func (c *Client) CreateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	var resp authResponse
	err := c.call(ctx, "accounts:signUp", credentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	session := c.session(resp)
	return &domain.Account{
		UserID:      resp.LocalID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		CreatedAt:   c.now(),
		Session:     session,
	}, nil
}

// UpdateDisplayName implements domain.ProfileUpdater.
func (c *Client) UpdateDisplayName(ctx context.Context, account *domain.Account, displayName string) error {
	if account.Session == nil || account.Session.IDToken == "" {
		return errors.New("firebase: account has no id token")
	}
	var resp authResponse
	return c.call(ctx, "accounts:update", updateRequest{
		IDToken:     account.Session.IDToken,
		DisplayName: displayName,
	}, &resp)
}

func (c *Client) session(resp authResponse) *domain.Session {
	s := &domain.Session{
		UserID:       resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}
	if secs, err := strconv.Atoi(resp.ExpiresIn); err == nil && secs > 0 {
		s.ExpiresAt = c.now().Add(time.Duration(secs) * time.Second)
	}
	return s
}

// call posts body to the given accounts method and decodes the reply into out.
func (c *Client) call(ctx context.Context, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, method, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.ProviderError{Code: domain.CodeNetworkError, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &domain.ProviderError{Code: domain.CodeNetworkError, Message: err.Error(), Err: err}
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &domain.ProviderError{Code: domain.CodeInternalError, Message: "malformed response from auth provider", Err: err}
	}
	return nil
}
