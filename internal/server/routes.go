package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sosyaltarif/tarifauth/internal/middleware"
	"github.com/sosyaltarif/tarifauth/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultRate, s.authHandler.Throttled)
	requireSession := middleware.RequireSession(s.Routes.Login, s.authHandler.SessionDenied)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET(s.Routes.Home, s.homeHandler.HomeGet, requireSession)

	s.E.GET(s.Routes.Login, s.authHandler.LoginGet)
	s.E.POST(s.Routes.Login, s.authHandler.LoginPost, rateLimiter)

	s.E.GET(s.Routes.Register, s.authHandler.RegisterGet)
	s.E.POST(s.Routes.Register, s.authHandler.RegisterPost, rateLimiter)

	s.E.GET(s.Routes.Notice, s.authHandler.NoticeGet)
	s.E.GET(s.Routes.Logout, s.authHandler.Logout)

	s.E.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status": "ok",
			"events": s.Audit.Counts(),
		})
	})
}
