// Package config handles application configuration loading and validation
// from environment variables, providing a type-safe configuration structure.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration values loaded from environment variables.
// It provides a centralized, type-safe way to access configuration throughout the application.
type Config struct {
	// Server configuration
	ListenAddr     string        // Address to listen on (e.g., ":8080")
	RequestTimeout time.Duration // Timeout for upstream GigaChat requests

	// GigaChat provider configuration
	GigaChat GigaChatConfig

	// Catalog
	CatalogPath string // Optional YAML file overriding the built-in catalog

	// Generation result cache
	CacheTTL time.Duration // TTL for cached itineraries (0 disables caching)

	// Logging
	LogLevel  string // Log level (debug, info, warn, error)
	LogFormat string // Log format (json, console)
	LogFile   string // Path to log file (empty for stdout)

	// CORS settings
	CORSAllowedOrigins []string // Allowed origins for CORS
}

// GigaChatConfig holds everything needed to talk to the GigaChat API.
//
// AuthKey is the pre-shared Basic credential for the OAuth exchange. It is
// deliberately allowed to be empty at startup: the catalog endpoints must stay
// usable without it, and generation reports a configuration error on first use.
type GigaChatConfig struct {
	AuthKey      string // Base64 Basic credential for the OAuth exchange (GIGACHAT_AUTH_KEY)
	OAuthURL     string // Credential exchange endpoint
	APIBaseURL   string // Chat API base URL
	Scope        string // OAuth scope constant
	Model        string // Model identifier
	CABundlePath string // Path to the PEM bundle with the provider's trust anchors
}

// New creates a new configuration with values from environment variables.
// It applies default values where environment variables are not set.
func New() (*Config, error) {
	cfg := &Config{
		ListenAddr:     EnvOrDefault("LISTEN_ADDR", ":8080"),
		RequestTimeout: EnvDurationOrDefault("REQUEST_TIMEOUT", 60*time.Second),

		GigaChat: GigaChatConfig{
			AuthKey:      EnvOrDefault("GIGACHAT_AUTH_KEY", ""),
			OAuthURL:     EnvOrDefault("GIGACHAT_OAUTH_URL", "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"),
			APIBaseURL:   EnvOrDefault("GIGACHAT_API_URL", "https://gigachat.devices.sberbank.ru/api/v1"),
			Scope:        EnvOrDefault("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:        EnvOrDefault("GIGACHAT_MODEL", "GigaChat"),
			CABundlePath: EnvOrDefault("GIGACHAT_CA_BUNDLE", ""),
		},

		CatalogPath: EnvOrDefault("CATALOG_PATH", ""),
		CacheTTL:    EnvDurationOrDefault("CACHE_TTL", time.Hour),

		LogLevel:  EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: EnvOrDefault("LOG_FORMAT", "json"),
		LogFile:   EnvOrDefault("LOG_FILE", ""),

		CORSAllowedOrigins: EnvStringSliceOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.GigaChat.OAuthURL == "" || c.GigaChat.APIBaseURL == "" {
		return fmt.Errorf("GigaChat endpoint URLs must not be empty")
	}
	return nil
}
