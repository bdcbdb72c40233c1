package main

import (
	"log/slog"
	"os"

	"github.com/sosyaltarif/tarifauth/internal/config"
	"github.com/sosyaltarif/tarifauth/internal/logging"
	"github.com/sosyaltarif/tarifauth/internal/server"
)

func main() {
	logging.New()
	cfg := config.New()

	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	s.RegisterRoutes()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
