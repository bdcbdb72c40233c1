package authflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
		raw  string
	}{
		{"invalid email", domain.NewProviderError(domain.CodeInvalidEmail, ""), KindInvalidEmail, ""},
		{"wrapped user not found", fmt.Errorf("sign in: %w", domain.NewProviderError(domain.CodeUserNotFound, "x")), KindUserNotFound, ""},
		{"wrong password", domain.NewProviderError(domain.CodeWrongPassword, ""), KindWrongPasswordOrInvalidCredential, ""},
		{"invalid credential", domain.NewProviderError(domain.CodeInvalidCredential, ""), KindWrongPasswordOrInvalidCredential, ""},
		{"network", domain.NewProviderError(domain.CodeNetworkError, "offline"), KindNetworkError, ""},
		{"too many", domain.NewProviderError(domain.CodeTooManyRequests, ""), KindTooManyAttempts, ""},
		{"disabled", domain.NewProviderError(domain.CodeUserDisabled, ""), KindUserDisabled, ""},
		{"unknown with message", domain.NewProviderError("internal-error", "backend exploded"), KindUnknownProviderError, "backend exploded"},
		{"unknown without message", domain.NewProviderError("internal-error", ""), KindUnknownProviderError, "internal-error"},
		{"deadline", context.DeadlineExceeded, KindNetworkError, ""},
		{"plain error", errors.New("boom"), KindUnknownProviderError, "boom"},
		{"already classified", &Failure{Kind: KindPasswordMismatch}, KindPasswordMismatch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Classify(tt.err)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.raw, f.Raw)
		})
	}

	assert.Nil(t, Classify(nil))
}

func TestFailureIs(t *testing.T) {
	err := fmt.Errorf("submit: %w", &Failure{Kind: KindNetworkError})
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.True(t, KindWeakPassword.Local())
	assert.False(t, KindNetworkError.Local())
	assert.Equal(t, "authflow: unknown_provider_error: x", (&Failure{Kind: KindUnknownProviderError, Raw: "x"}).Error())
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "us***@example.com", MaskEmail("user@example.com"))
	assert.Equal(t, "a***@b.co", MaskEmail("a@b.co"))
	assert.Equal(t, "not***", MaskEmail("not-an-email"))
	assert.Equal(t, "***", MaskEmail("ab"))
}
