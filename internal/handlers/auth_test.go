package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/handlers"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/middleware"
	"github.com/sosyaltarif/tarifauth/internal/provider/memory"
	"github.com/sosyaltarif/tarifauth/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// browser replays cookies between requests like a real client.
type browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
	lang    string
}

func newBrowser(t *testing.T, e *echo.Echo) *browser {
	return &browser{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if b.lang != "" {
		req.Header.Set("Accept-Language", b.lang)
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func setupAuthTest(t *testing.T) (*echo.Echo, *memory.Provider) {
	t.Helper()
	provider := memory.New("test-secret", memory.WithBcryptCost(bcrypt.MinCost))
	messages := i18n.MustNew(language.Turkish)
	deps := authflow.Dependencies{Provider: provider, Messages: messages}
	routes := handlers.DefaultRoutes

	authHandler := handlers.NewAuthHandler(authflow.NewLoginFlow(deps), authflow.NewRegistrationFlow(deps), messages, routes)
	homeHandler := handlers.NewHomeHandler(messages, routes)

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(middleware.ClientID)

	e.GET(routes.Home, homeHandler.HomeGet, middleware.RequireSession(routes.Login, authHandler.SessionDenied))
	e.GET(routes.Login, authHandler.LoginGet)
	e.POST(routes.Login, authHandler.LoginPost)
	e.GET(routes.Register, authHandler.RegisterGet)
	e.POST(routes.Register, authHandler.RegisterPost)
	e.GET(routes.Notice, authHandler.NoticeGet)
	e.GET(routes.Logout, authHandler.Logout)
	return e, provider
}

func registrationForm(email string) url.Values {
	return url.Values{
		"name":             {"Ömer"},
		"surname":          {"Yılmaz"},
		"email":            {email},
		"password":         {"abc123"},
		"password_confirm": {"abc123"},
	}
}

func TestLoginGet(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)

	rec := b.get("/auth/login")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="tr">`)
	assert.Contains(t, body, "Giriş Yap - Sosyal Tarif")
	assert.Contains(t, body, `hx-indicator="#login-busy"`)
	assert.Contains(t, body, `hx-disabled-elt="find button"`)
	assert.Contains(t, body, `href="/auth/register"`)

	b.lang = "en-US,en;q=0.9"
	rec = b.get("/auth/login")
	assert.Contains(t, rec.Body.String(), "Sign In - Sosyal Tarif")

	b.lang = ""
	rec = b.get("/auth/login?lang=en")
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)
}

func TestLoginPost_LocalValidation(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)

	tests := []struct {
		name  string
		form  url.Values
		flash string
	}{
		{"empty password", url.Values{"email": {"omer@example.com"}}, "Eksik Bilgi: Lütfen e-posta ve şifre girin."},
		{"bad email", url.Values{"email": {"not-an-email"}, "password": {"validpass"}}, "Hatalı Giriş: Geçersiz e-posta formatı."},
		{"weak password", url.Values{"email": {"a@b.co"}, "password": {"12345"}}, "Hatalı Giriş: Şifre 6 ile 25 karakter arasında olmalı ve boşluk içermemeli."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := b.post("/auth/login", tt.form)
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

			page := b.get("/auth/login").Body.String()
			assert.Contains(t, page, tt.flash)
			assert.Contains(t, page, `value="`+tt.form.Get("email")+`"`)

			again := b.get("/auth/login").Body.String()
			assert.NotContains(t, again, tt.flash, "flash is shown once")
		})
	}
}

func TestRegisterThenHome(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)

	rec := b.post("/auth/register", registrationForm("omer@example.com"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/notice", rec.Header().Get(echo.HeaderLocation))

	notice := b.get("/auth/notice")
	require.Equal(t, http.StatusOK, notice.Code)
	body := notice.Body.String()
	assert.Contains(t, body, "Başarılı")
	assert.Contains(t, body, `<a class="button" href="/">Tamam</a>`)

	// The notice is consumed once shown.
	rec = b.get("/auth/notice")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

	home := b.get("/")
	require.Equal(t, http.StatusOK, home.Code)
	assert.Contains(t, home.Body.String(), "Merhaba, Ömer Yılmaz")
}

func TestRegisterPost_Failures(t *testing.T) {
	e, provider := setupAuthTest(t)
	b := newBrowser(t, e)

	_, err := provider.CreateAccount(context.Background(), "taken@example.com", "abc123")
	require.NoError(t, err)

	mismatch := registrationForm("new@example.com")
	mismatch.Set("password_confirm", "abc124")
	rec := b.post("/auth/register", mismatch)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/register", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, b.get("/auth/register").Body.String(), "Şifreler eşleşmiyor.")

	rec = b.post("/auth/register", registrationForm("taken@example.com"))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	page := b.get("/auth/register").Body.String()
	assert.Contains(t, page, "Kayıt Hatası: Bu e-posta adresi zaten kullanımda.")
	assert.Contains(t, page, `value="taken@example.com"`)

	assert.Equal(t, http.StatusSeeOther, b.get("/").Code, "failed registration does not sign in")
}

func TestLoginPost_ProviderOutcomes(t *testing.T) {
	e, provider := setupAuthTest(t)
	_, err := provider.CreateAccount(context.Background(), "omer@example.com", "abc123")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		b := newBrowser(t, e)
		rec := b.post("/auth/login", url.Values{"email": {"omer@example.com"}, "password": {"abc999"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, b.get("/auth/login").Body.String(), "HATA: Şifreniz yanlış. Lütfen tekrar deneyin.")
	})

	t.Run("unknown user", func(t *testing.T) {
		b := newBrowser(t, e)
		b.post("/auth/login", url.Values{"email": {"ghost@example.com"}, "password": {"abc123"}})
		assert.Contains(t, b.get("/auth/login").Body.String(), "Bu e-posta ile kayıtlı bir kullanıcı bulunamadı.")
	})

	t.Run("success then logout", func(t *testing.T) {
		b := newBrowser(t, e)
		rec := b.post("/auth/login", url.Values{"email": {"omer@example.com"}, "password": {"abc123"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

		home := b.get("/")
		require.Equal(t, http.StatusOK, home.Code)
		assert.Contains(t, home.Body.String(), "Giriş Başarılı: Hoş geldiniz!")
		assert.Contains(t, home.Body.String(), `href="/auth/logout"`)

		rec = b.get("/auth/logout")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Contains(t, b.get("/auth/login").Body.String(), "Çıkış yapıldı.")
		assert.Equal(t, http.StatusSeeOther, b.get("/").Code)
	})
}

func TestHome_RequiresSession(t *testing.T) {
	e, _ := setupAuthTest(t)
	b := newBrowser(t, e)

	rec := b.get("/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}
