package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/middleware"
	"github.com/sosyaltarif/tarifauth/internal/view"
	"github.com/sosyaltarif/tarifauth/internal/view/dto/auth"
	"github.com/sosyaltarif/tarifauth/web/src/templates/layouts"
	"github.com/sosyaltarif/tarifauth/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	messages *i18n.Catalog
	routes   Routes
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(messages *i18n.Catalog, routes Routes) *HomeHandler {
	return &HomeHandler{messages: messages, routes: routes}
}

// HomeGet renders the home page. It sits behind middleware.RequireSession.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, h.routes.Login)
	}
	t := h.messages.For(Language(c, h.messages))
	data := auth.HomeData{
		T:           t,
		DisplayName: s.DisplayName,
		Email:       s.Email,
		LogoutHref:  h.routes.Logout,
	}
	page := layouts.Base(t.T(i18n.PageHome), t.Tag().String(), view.GetFlashData(c), pages.Home(data))
	return c.Render(http.StatusOK, "", page)
}
