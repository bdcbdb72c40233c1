package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Auth provider backends.
const (
	ProviderFirebase = "firebase"
	ProviderMemory   = "memory"
)

// Guard backends.
const (
	GuardMemory = "memory"
	GuardRedis  = "redis"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetSessionSecret() string
	GetAppBaseURL() string
	GetAuthProvider() string
	GetFirebaseAPIKey() string
	GetFirebaseBaseURL() string
	GetFirebaseTimeout() time.Duration
	GetMemoryTokenSecret() string
	GetGuardBackend() string
	GetRedisURL() string
	GetGuardTTL() time.Duration
	GetDefaultLanguage() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr        string
	SessionSecret     string
	AppBaseURL        string
	AuthProvider      string
	FirebaseAPIKey    string
	FirebaseBaseURL   string
	FirebaseTimeout   time.Duration
	MemoryTokenSecret string
	GuardBackend      string
	RedisURL          string
	GuardTTL          time.Duration
	DefaultLanguage   string
}

var _ Provider = (*Config)(nil)

// New loads configuration from the environment and exits the process if it
// is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads the given .env files (missing files are ignored) and then the
// environment.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerAddr:        getenv("SERVER_ADDR", ":8080"),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		AppBaseURL:        getenv("APP_BASE_URL", "http://localhost:8080"),
		AuthProvider:      strings.ToLower(getenv("AUTH_PROVIDER", ProviderFirebase)),
		FirebaseAPIKey:    os.Getenv("FIREBASE_API_KEY"),
		FirebaseBaseURL:   os.Getenv("FIREBASE_BASE_URL"),
		MemoryTokenSecret: os.Getenv("MEMORY_TOKEN_SECRET"),
		GuardBackend:      strings.ToLower(getenv("GUARD_BACKEND", GuardMemory)),
		RedisURL:          os.Getenv("REDIS_URL"),
		DefaultLanguage:   getenv("DEFAULT_LANGUAGE", "tr"),
	}

	var err error
	if cfg.FirebaseTimeout, err = duration("FIREBASE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.GuardTTL, err = duration("GUARD_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected backends have what they need. The
// session secret is only checked by the web server, see RequireSessionSecret.
func (c *Config) Validate() error {
	switch c.AuthProvider {
	case ProviderFirebase:
		if c.FirebaseAPIKey == "" {
			return fmt.Errorf("FIREBASE_API_KEY is required when AUTH_PROVIDER=%s", ProviderFirebase)
		}
	case ProviderMemory:
		if c.MemoryTokenSecret == "" {
			c.MemoryTokenSecret = c.SessionSecret
		}
		if c.MemoryTokenSecret == "" {
			// Tokens only need to verify within this process.
			c.MemoryTokenSecret = uuid.NewString()
		}
	default:
		return fmt.Errorf("unknown AUTH_PROVIDER %q", c.AuthProvider)
	}
	switch c.GuardBackend {
	case GuardMemory:
	case GuardRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when GUARD_BACKEND=%s", GuardRedis)
		}
	default:
		return fmt.Errorf("unknown GUARD_BACKEND %q", c.GuardBackend)
	}
	return nil
}

// RequireSessionSecret fails when no cookie signing secret is configured.
func RequireSessionSecret(p Provider) error {
	if p.GetSessionSecret() == "" {
		return fmt.Errorf("SESSION_SECRET is not set")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetAuthProvider() string { return c.AuthProvider }
func (c *Config) GetFirebaseAPIKey() string { return c.FirebaseAPIKey }
func (c *Config) GetFirebaseBaseURL() string { return c.FirebaseBaseURL }
func (c *Config) GetFirebaseTimeout() time.Duration { return c.FirebaseTimeout }
func (c *Config) GetMemoryTokenSecret() string { return c.MemoryTokenSecret }
func (c *Config) GetGuardBackend() string { return c.GuardBackend }
func (c *Config) GetRedisURL() string { return c.RedisURL }
func (c *Config) GetGuardTTL() time.Duration { return c.GuardTTL }
func (c *Config) GetDefaultLanguage() string { return c.DefaultLanguage }
