package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sosyaltarif/tarifauth/internal/audit"
	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/config"
	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/guard"
	"github.com/sosyaltarif/tarifauth/internal/handlers"
	"github.com/sosyaltarif/tarifauth/internal/i18n"
	"github.com/sosyaltarif/tarifauth/internal/middleware"
	"github.com/sosyaltarif/tarifauth/internal/provider"
	"github.com/sosyaltarif/tarifauth/internal/pubsub"
	"github.com/sosyaltarif/tarifauth/internal/rendering"
	"golang.org/x/text/language"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Provider domain.AuthProvider
	Guard    guard.Guard
	Bus      *pubsub.WatermillBridge
	Audit    *audit.Log
	Messages *i18n.Catalog
	Routes   handlers.Routes

	authHandler *handlers.AuthHandler
	homeHandler *handlers.HomeHandler
	stopAudit   context.CancelFunc
}

// Option overrides a dependency New would otherwise build from config.
type Option func(*Server)

// WithAuthProvider replaces the configured auth provider.
func WithAuthProvider(p domain.AuthProvider) Option {
	return func(s *Server) { s.Provider = p }
}

// WithGuard replaces the configured submission guard.
func WithGuard(g guard.Guard) Option {
	return func(s *Server) { s.Guard = g }
}

// New wires the server from configuration.
func New(cfg config.Provider, opts ...Option) (*Server, error) {
	if err := config.RequireSessionSecret(cfg); err != nil {
		return nil, err
	}
	s := &Server{Cfg: cfg, Routes: handlers.DefaultRoutes}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.Provider == nil {
		if s.Provider, err = provider.New(cfg); err != nil {
			return nil, err
		}
	}
	if s.Guard == nil {
		if s.Guard, err = newGuard(cfg); err != nil {
			return nil, err
		}
	}

	fallback, err := language.Parse(cfg.GetDefaultLanguage())
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_LANGUAGE %q: %w", cfg.GetDefaultLanguage(), err)
	}
	if s.Messages, err = i18n.New(fallback); err != nil {
		return nil, err
	}

	s.Bus = pubsub.NewWatermillBridge()
	s.Audit = audit.New(slog.Default())
	auditCtx, cancel := context.WithCancel(context.Background())
	if err := s.Audit.Start(auditCtx, s.Bus); err != nil {
		cancel()
		return nil, err
	}
	s.stopAudit = cancel

	deps := authflow.Dependencies{
		Provider:  s.Provider,
		Guard:     s.Guard,
		Publisher: s.Bus,
		Messages:  s.Messages,
	}
	s.authHandler = handlers.NewAuthHandler(authflow.NewLoginFlow(deps), authflow.NewRegistrationFlow(deps), s.Messages, s.Routes)
	s.homeHandler = handlers.NewHomeHandler(s.Messages, s.Routes)

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)
	e.Renderer = rendering.NewUniversalRenderer()

	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.ClientID)
	e.Use(middleware.Logger)

	s.E = e
	return s, nil
}

func newGuard(cfg config.Provider) (guard.Guard, error) {
	switch cfg.GetGuardBackend() {
	case config.GuardRedis:
		g, err := guard.NewRedisFromURL(cfg.GetRedisURL(), "tarifauth:submit:", cfg.GetGuardTTL())
		if err != nil {
			return nil, fmt.Errorf("failed to create redis guard: %w", err)
		}
		return g, nil
	default:
		return guard.NewMemory(), nil
	}
}

// Close releases the event bus and the guard backend.
func (s *Server) Close() error {
	if s.stopAudit != nil {
		s.stopAudit()
	}
	var firstErr error
	if s.Bus != nil {
		if err := s.Bus.Close(); err != nil {
			firstErr = err
		}
	}
	if c, ok := s.Guard.(io.Closer); ok {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
