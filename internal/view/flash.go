package view

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyEmail    = "form_email"
	flashKeyNotice   = "notice"
)

// FlashData is what a page shows from the flash session.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// Notice is an alert that blocks the page until it is acknowledged. Href is
// where the acknowledgement leads.
type Notice struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Href    string `json:"href"`
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("Failed to load flash session", "error", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save flash session", "error", err)
	}
}

// takeFlashes reads and clears the flashes for each key.
func takeFlashes(c echo.Context, keys ...string) map[string][]string {
	out := make(map[string][]string, len(keys))
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return out
	}
	consumed := false
	for _, key := range keys {
		for _, f := range sess.Flashes(key) {
			consumed = true
			if s, ok := f.(string); ok {
				out[key] = append(out[key], s)
			}
		}
	}
	// Flashes() only clears in memory; persist the removal.
	if consumed {
		_ = sess.Save(c.Request(), c.Response())
	}
	return out
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears the success and error flashes.
func GetFlashData(c echo.Context) FlashData {
	flashes := takeFlashes(c, flashKeySuccess, flashKeyError)
	return FlashData{
		Success: flashes[flashKeySuccess],
		Error:   flashes[flashKeyError],
	}
}

// SetFormEmail remembers a submitted email so the next form render can
// prefill it.
func SetFormEmail(c echo.Context, email string) {
	if email == "" {
		return
	}
	setFlash(c, flashKeyEmail, email)
}

// TakeFormEmail returns and clears the remembered email.
func TakeFormEmail(c echo.Context) string {
	emails := takeFlashes(c, flashKeyEmail)[flashKeyEmail]
	if len(emails) == 0 {
		return ""
	}
	return emails[len(emails)-1]
}

// SetNotice stores a pending notice, replacing any earlier one.
func SetNotice(c echo.Context, n Notice) {
	raw, err := json.Marshal(n)
	if err != nil {
		slog.Error("Failed to encode notice", "error", err)
		return
	}
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("Failed to load flash session", "error", err)
		return
	}
	sess.Flashes(flashKeyNotice)
	sess.AddFlash(string(raw), flashKeyNotice)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save flash session", "error", err)
	}
}

// TakeNotice returns and clears the pending notice.
func TakeNotice(c echo.Context) (Notice, bool) {
	raws := takeFlashes(c, flashKeyNotice)[flashKeyNotice]
	if len(raws) == 0 {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal([]byte(raws[len(raws)-1]), &n); err != nil {
		slog.Warn("Discarding unreadable notice", "error", err)
		return Notice{}, false
	}
	return n, true
}
