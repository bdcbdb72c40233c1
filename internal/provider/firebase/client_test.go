package firebase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", WithBaseURL(srv.URL+"/v1"))
	c.now = func() time.Time { return time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC) }
	return c
}

func writeFirebaseError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": status, "message": message},
	})
}

func TestSignIn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/accounts:signInWithPassword", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var body credentialsRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user@example.com", body.Email)
			assert.Equal(t, "validpass", body.Password)
			assert.True(t, body.ReturnSecureToken)

			_ = json.NewEncoder(w).Encode(authResponse{
				LocalID: "uid-42", Email: "user@example.com", IDToken: "id-tok",
				RefreshToken: "ref-tok", ExpiresIn: "3600",
			})
		})

		s, err := c.SignIn(context.Background(), "user@example.com", "validpass")
		require.NoError(t, err)
		assert.Equal(t, "uid-42", s.UserID)
		assert.Equal(t, "id-tok", s.IDToken)
		assert.Equal(t, time.Date(2025, 5, 4, 13, 0, 0, 0, time.UTC), s.ExpiresAt)
	})

	errorCases := []struct {
		message string
		status  int
		code    domain.ProviderErrorCode
	}{
		{"EMAIL_NOT_FOUND", 400, domain.CodeUserNotFound},
		{"INVALID_PASSWORD", 400, domain.CodeWrongPassword},
		{"INVALID_LOGIN_CREDENTIALS", 400, domain.CodeInvalidCredential},
		{"INVALID_EMAIL", 400, domain.CodeInvalidEmail},
		{"USER_DISABLED", 400, domain.CodeUserDisabled},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled", 400, domain.CodeTooManyRequests},
		{"RESOURCE_EXHAUSTED", 429, domain.CodeTooManyRequests},
		{"QUOTA_EXCEEDED", 400, "quota_exceeded"},
	}
	for _, tc := range errorCases {
		t.Run(tc.message, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				writeFirebaseError(w, tc.status, tc.message)
			})

			_, err := c.SignIn(context.Background(), "user@example.com", "validpass")
			pe, ok := domain.AsProviderError(err)
			require.True(t, ok, "expected a provider error, got %v", err)
			assert.Equal(t, tc.code, pe.Code)
			assert.Equal(t, tc.message, pe.Message)
		})
	}

	t.Run("unparseable error body", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})
		_, err := c.SignIn(context.Background(), "user@example.com", "validpass")
		pe, ok := domain.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, domain.CodeInternalError, pe.Code)
	})

	t.Run("transport failure is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := NewClient("k", WithBaseURL(url), WithTimeout(time.Second))
		_, err := c.SignIn(context.Background(), "user@example.com", "validpass")
		pe, ok := domain.AsProviderError(err)
		require.True(t, ok)
		assert.Equal(t, domain.CodeNetworkError, pe.Code)
		assert.Error(t, pe.Unwrap())
	})
}

func TestCreateAccountAndUpdateDisplayName(t *testing.T) {
	var updated updateRequest
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/accounts:signUp":
			_ = json.NewEncoder(w).Encode(authResponse{
				LocalID: "uid-7", Email: "new@example.com", IDToken: "id-7", ExpiresIn: "3600",
			})
		case "/v1/accounts:update":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&updated))
			_ = json.NewEncoder(w).Encode(authResponse{LocalID: "uid-7", DisplayName: updated.DisplayName})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	account, err := c.CreateAccount(context.Background(), "new@example.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "uid-7", account.UserID)
	require.NotNil(t, account.Session)
	assert.Equal(t, "id-7", account.Session.IDToken)

	require.NoError(t, c.UpdateDisplayName(context.Background(), account, "Ömer Yılmaz"))
	assert.Equal(t, "id-7", updated.IDToken)
	assert.Equal(t, "Ömer Yılmaz", updated.DisplayName)

	assert.Error(t, c.UpdateDisplayName(context.Background(), &domain.Account{}, "x"))
}

func TestCreateAccount_EmailExists(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeFirebaseError(w, http.StatusBadRequest, "EMAIL_EXISTS")
	})
	_, err := c.CreateAccount(context.Background(), "dup@example.com", "abc123")
	pe, ok := domain.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeEmailAlreadyInUse, pe.Code)
}
