// Package provider selects the auth backend named in configuration.
package provider

import (
	"fmt"
	"log/slog"

	"github.com/sosyaltarif/tarifauth/internal/config"
	"github.com/sosyaltarif/tarifauth/internal/domain"
	"github.com/sosyaltarif/tarifauth/internal/provider/firebase"
	"github.com/sosyaltarif/tarifauth/internal/provider/memory"
)

// New builds the configured AuthProvider.
func New(cfg config.Provider) (domain.AuthProvider, error) {
	switch cfg.GetAuthProvider() {
	case config.ProviderMemory:
		slog.Warn("Using the in-memory auth provider; accounts are lost on restart")
		return memory.New(cfg.GetMemoryTokenSecret()), nil
	case config.ProviderFirebase:
		opts := []firebase.Option{firebase.WithTimeout(cfg.GetFirebaseTimeout())}
		if u := cfg.GetFirebaseBaseURL(); u != "" {
			opts = append(opts, firebase.WithBaseURL(u))
		}
		return firebase.NewClient(cfg.GetFirebaseAPIKey(), opts...), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.GetAuthProvider())
	}
}
