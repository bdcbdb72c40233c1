package i18n_test

import (
	"testing"

	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalogText(t *testing.T) {
	cat, err := i18n.New(language.Turkish)
	require.NoError(t, err)

	assert.Equal(t, "İnternet bağlantısı yok.", cat.Text(language.Turkish, i18n.NetworkError))
	assert.Equal(t, "No internet connection.", cat.Text(language.English, i18n.NetworkError))

	t.Run("formats the raw provider message into the unknown error", func(t *testing.T) {
		got := cat.Text(language.Turkish, i18n.UnknownError, "quota exceeded")
		assert.Equal(t, "Bir hata oluştu: quota exceeded", got)
	})

	t.Run("unsupported language falls back", func(t *testing.T) {
		assert.Equal(t, "Tamam", cat.Text(language.German, i18n.Acknowledge))
	})
}

func TestCatalogMatch(t *testing.T) {
	cat := i18n.MustNew(language.Turkish)

	tests := []struct {
		accept string
		want   string
	}{
		{"en-US,en;q=0.9", "en"},
		{"tr-TR,tr;q=0.9,en;q=0.5", "tr"},
		{"de-DE", "tr"},
		{"", "tr"},
		{"en", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Match(tt.accept).String())
		})
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	cat := i18n.MustNew(language.English)
	keys := []i18n.Key{
		i18n.TitleError, i18n.TitleMissingFields, i18n.TitleInvalidInput,
		i18n.TitleRegisterError, i18n.TitleLoginSucceeded, i18n.TitleRegisterSuccess,
		i18n.LoginMissingFields, i18n.RegisterMissingFields, i18n.InvalidEmailFormat,
		i18n.WeakPassword, i18n.PasswordMismatch, i18n.InvalidEmail, i18n.UserNotFound,
		i18n.WrongPassword, i18n.NetworkError, i18n.EmailAlreadyInUse,
		i18n.TooManyAttempts, i18n.UserDisabled, i18n.SubmissionInProgress,
		i18n.Welcome, i18n.Registered, i18n.Acknowledge, i18n.Loading,
		i18n.PageLogin, i18n.PageRegister, i18n.PageHome, i18n.FieldName,
		i18n.FieldSurname, i18n.FieldEmail, i18n.FieldPassword,
		i18n.FieldPasswordConfirm, i18n.ActionLogin, i18n.ActionRegister,
		i18n.ActionToRegister, i18n.ActionToLogin, i18n.ActionLogout,
		i18n.LoggedOut, i18n.SessionRequired,
	}
	for _, tag := range i18n.Supported {
		for _, key := range keys {
			assert.NotEqual(t, string(key), cat.Text(tag, key), "missing %s translation for %s", tag, key)
		}
	}
}

func TestPrinter(t *testing.T) {
	cat := i18n.MustNew(language.Turkish)

	tr := cat.For(language.Turkish)
	assert.Equal(t, "Merhaba, Ömer", tr.T(i18n.HomeGreeting, "Ömer"))
	assert.Equal(t, language.Turkish, tr.Tag())

	en := cat.For(language.English)
	assert.Equal(t, "Sign Out", en.T(i18n.ActionLogout))
}
