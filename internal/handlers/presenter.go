package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/view"
	"golang.org/x/text/language"
)

// webPresenter collects what a flow wants shown during one POST and turns it
// into flashes, a pending notice and the redirect target of the response.
type webPresenter struct {
	c        echo.Context
	screenID string
	lang     language.Tag
	routes   Routes
	// redirect starts as the submitting screen so failures return to it.
	redirect string
}

var _ authflow.Presenter = (*webPresenter)(nil)

func newWebPresenter(c echo.Context, screenID string, lang language.Tag, routes Routes, self string) *webPresenter {
	return &webPresenter{c: c, screenID: screenID, lang: lang, routes: routes, redirect: self}
}

func (p *webPresenter) ScreenID() string { return p.screenID }
func (p *webPresenter) Language() language.Tag { return p.lang }

// The browser shows the htmx indicator for the whole request, so the busy
// hooks only trace.
func (p *webPresenter) BusyStarted() {
	logging.FromContext(p.c.Request().Context()).Debug("Busy", "screen", p.screenID)
}

func (p *webPresenter) BusyStopped() {
	logging.FromContext(p.c.Request().Context()).Debug("Idle", "screen", p.screenID)
}

func (p *webPresenter) ShowAlert(a authflow.Alert) {
	if a.Next != authflow.DestinationNone {
		view.SetNotice(p.c, view.Notice{
			Success: a.Kind == authflow.AlertSuccess,
			Title:   a.Title,
			Message: a.Message,
			Action:  a.Action,
			Href:    p.routes.Path(a.Next),
		})
		p.redirect = p.routes.Notice
		return
	}
	text := a.Title + ": " + a.Message
	if a.Kind == authflow.AlertSuccess {
		view.SetFlashSuccess(p.c, text)
		return
	}
	view.SetFlashError(p.c, text)
}

func (p *webPresenter) Navigate(d authflow.Destination) {
	if path := p.routes.Path(d); path != "" {
		p.redirect = path
	}
}
