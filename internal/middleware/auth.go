package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/domain"
)

const (
	// SessionContextKey holds the *domain.Session of a signed-in request.
	SessionContextKey = "session"
	// ClientIDKey holds the browser's stable client id.
	ClientIDKey = "client_id"

	authSessionName   = "auth-session"
	clientSessionName = "client-session"
)

// SaveSession stores the signed-in user in the auth cookie. Tokens stay on
// the server side of the flow and are not written to the cookie.
func SaveSession(c echo.Context, s *domain.Session) error {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return err
	}
	sess.Values["user_id"] = s.UserID
	sess.Values["email"] = s.Email
	sess.Values["display_name"] = s.DisplayName
	sess.Values["expires_at"] = s.ExpiresAt.Unix()
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge(s.ExpiresAt),
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	return sess.Save(c.Request(), c.Response())
}

func maxAge(expires time.Time) int {
	if expires.IsZero() {
		return 86400
	}
	if secs := int(time.Until(expires).Seconds()); secs > 0 {
		return secs
	}
	return -1
}

// LoadSession reads the signed-in user from the auth cookie.
func LoadSession(c echo.Context) (*domain.Session, error) {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return nil, err
	}
	userID, _ := sess.Values["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrNoSession
	}
	s := &domain.Session{UserID: userID}
	s.Email, _ = sess.Values["email"].(string)
	s.DisplayName, _ = sess.Values["display_name"].(string)
	if exp, ok := sess.Values["expires_at"].(int64); ok && exp > 0 {
		s.ExpiresAt = time.Unix(exp, 0)
	}
	return s, nil
}

// ClearSession expires the auth cookie.
func ClearSession(c echo.Context) error {
	sess, err := session.Get(authSessionName, c)
	if err != nil {
		return err
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	return sess.Save(c.Request(), c.Response())
}

// RequireSession protects routes that need a signed-in user. Anonymous or
// expired sessions are sent to loginPath; onDenied, when set, runs first
// (e.g. to leave a flash message).
func RequireSession(loginPath string, onDenied func(echo.Context, error)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, err := LoadSession(c)
			if err == nil && s.Expired(time.Now()) {
				err = domain.ErrSessionExpired
				_ = ClearSession(c)
			}
			if err != nil {
				if onDenied != nil && !errors.Is(err, domain.ErrNoSession) {
					onDenied(c, err)
				}
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			c.Set(SessionContextKey, s)
			return next(c)
		}
	}
}

// CurrentSession returns the session stored by RequireSession.
func CurrentSession(c echo.Context) (*domain.Session, bool) {
	s, ok := c.Get(SessionContextKey).(*domain.Session)
	return s, ok
}

// ClientID gives every browser a stable random id, used to key in-flight
// submissions per client.
func ClientID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(clientSessionName, c)
		if err != nil {
			return next(c)
		}
		id, _ := sess.Values["id"].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values["id"] = id
			sess.Options = &sessions.Options{Path: "/", MaxAge: 86400 * 365, HttpOnly: true, SameSite: http.SameSiteLaxMode}
			_ = sess.Save(c.Request(), c.Response())
		}
		c.Set(ClientIDKey, id)
		return next(c)
	}
}
