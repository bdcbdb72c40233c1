package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/middleware"
	"github.com/sosyaltarif/tarifauth/internal/view"
	"github.com/sosyaltarif/tarifauth/internal/view/dto/auth"
	"github.com/sosyaltarif/tarifauth/web/src/templates/layouts"
	"github.com/sosyaltarif/tarifauth/web/src/templates/pages"
	"golang.org/x/text/language"
)

// AuthHandler serves the login and registration screens.
type AuthHandler struct {
	login    *authflow.LoginFlow
	register *authflow.RegistrationFlow
	messages *i18n.Catalog
	routes   Routes
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(login *authflow.LoginFlow, register *authflow.RegistrationFlow, messages *i18n.Catalog, routes Routes) *AuthHandler {
	return &AuthHandler{
		login:    login,
		register: register,
		messages: messages,
		routes:   routes,
	}
}

// LoginGet renders the login screen (GET /auth/login).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	t := h.messages.For(Language(c, h.messages))
	data := auth.LoginData{
		T:            t,
		Email:        view.TakeFormEmail(c),
		Action:       h.routes.Login,
		RegisterHref: h.routes.Register,
	}
	page := layouts.Base(t.T(i18n.PageLogin), t.Tag().String(), view.GetFlashData(c), pages.Login(data))
	return c.Render(http.StatusOK, "", page)
}

// LoginPost runs the login flow (POST /auth/login).
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form authflow.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	p := newWebPresenter(c, screenID(c), Language(c, h.messages), h.routes, h.routes.Login)
	session, err := h.login.Submit(c.Request().Context(), p, form)
	if errors.Is(err, authflow.ErrScreenClosed) {
		return nil
	}
	if err != nil {
		view.SetFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, p.redirect)
	}

	if err := middleware.SaveSession(c, session); err != nil {
		logging.FromContext(c.Request().Context()).Error("Failed to save auth session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Redirect(http.StatusSeeOther, p.redirect)
}

// RegisterGet renders the registration screen (GET /auth/register).
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	t := h.messages.For(Language(c, h.messages))
	data := auth.RegisterData{
		T:         t,
		Email:     view.TakeFormEmail(c),
		Action:    h.routes.Register,
		LoginHref: h.routes.Login,
	}
	page := layouts.Base(t.T(i18n.PageRegister), t.Tag().String(), view.GetFlashData(c), pages.Register(data))
	return c.Render(http.StatusOK, "", page)
}

// RegisterPost runs the registration flow (POST /auth/register). A new
// account is signed in right away; the confirmation notice leads home.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var form authflow.RegistrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}

	p := newWebPresenter(c, screenID(c), Language(c, h.messages), h.routes, h.routes.Register)
	account, err := h.register.Submit(c.Request().Context(), p, form)
	if errors.Is(err, authflow.ErrScreenClosed) {
		return nil
	}
	if err != nil {
		view.SetFormEmail(c, form.Email)
		return c.Redirect(http.StatusSeeOther, p.redirect)
	}

	if account.Session != nil {
		if err := middleware.SaveSession(c, account.Session); err != nil {
			logging.FromContext(c.Request().Context()).Error("Failed to save auth session", "error", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, p.redirect)
}

// NoticeGet shows the pending notice (GET /auth/notice). Without one there is
// nothing to acknowledge, so it falls back to the login screen.
func (h *AuthHandler) NoticeGet(c echo.Context) error {
	n, ok := view.TakeNotice(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, h.routes.Login)
	}
	tag := Language(c, h.messages)
	page := layouts.Base(n.Title, tag.String(), view.GetFlashData(c), pages.Notice(n))
	return c.Render(http.StatusOK, "", page)
}

// Logout ends the session (GET /auth/logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := middleware.ClearSession(c); err != nil {
		logging.FromContext(c.Request().Context()).Warn("Failed to clear auth session", "error", err)
	}
	view.SetFlashSuccess(c, h.messages.Text(Language(c, h.messages), i18n.LoggedOut))
	return c.Redirect(http.StatusSeeOther, h.routes.Login)
}

// Throttled answers a rate-limited submission by sending the user back to
// the screen with the too-many-attempts message.
func (h *AuthHandler) Throttled(c echo.Context) error {
	tag := Language(c, h.messages)
	view.SetFlashError(c, h.messages.Text(tag, i18n.TitleError)+": "+h.messages.Text(tag, i18n.TooManyAttempts))
	target := h.routes.Login
	if c.Request().URL.Path == h.routes.Register {
		target = h.routes.Register
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// SessionDenied leaves a message when a protected page rejects an expired
// session.
func (h *AuthHandler) SessionDenied(c echo.Context, _ error) {
	view.SetFlashError(c, h.messages.Text(Language(c, h.messages), i18n.SessionRequired))
}

// Language picks the page language: an explicit ?lang= wins over
// Accept-Language.
func Language(c echo.Context, messages *i18n.Catalog) language.Tag {
	if lang := c.QueryParam("lang"); lang != "" {
		return messages.Match(lang)
	}
	return messages.Match(c.Request().Header.Get("Accept-Language"))
}

// screenID identifies the browser's screen; one submission per client is in
// flight at a time.
func screenID(c echo.Context) string {
	if id, ok := c.Get(middleware.ClientIDKey).(string); ok && id != "" {
		return id
	}
	return c.RealIP()
}
