// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into strongly-typed
Go structs, providing early validation and default values. The Content API
server reads [Config]; the vvctl client reads [ClientConfig].

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/vvdex/internal/platform/validate"
	"github.com/taibuivan/vvdex/pkg/pagination"
)

// # Server Configuration

// Config holds all runtime configuration for the VVDex Content API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for admin token signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// AdminPasswordHash is the bcrypt hash checked by POST /auth/token.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Cross-Origin Resource Sharing, comma separated
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// CatalogCacheTTL bounds how long raw catalog lists stay in Redis.
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
}

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.CatalogCacheTTL < 0 {
		return nil, fmt.Errorf("config: CATALOG_CACHE_TTL must not be negative, got %s", cfg.CatalogCacheTTL)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Port returns the listen port.
func (c *Config) Port() string {
	return c.ServerPort
}

// Origins splits [Config.AllowedOrigins] into a trimmed, non-empty list.
func (c *Config) Origins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// # Client Configuration

// ClientConfig holds the settings vvctl uses to reach the Content API.
type ClientConfig struct {

	// BaseURL is the API root, e.g. https://api.vvdex.app/api/v1
	BaseURL string `env:"VVDEX_API_URL" envDefault:"http://localhost:8080/api/v1"`

	// Token is the admin bearer token; empty means anonymous (read-only).
	Token string `env:"VVDEX_API_TOKEN"`

	// Timeout applies to each HTTP round trip.
	Timeout time.Duration `env:"VVDEX_API_TIMEOUT" envDefault:"15s"`

	// PageLimit is the "limit" sent with list requests.
	PageLimit int `env:"VVDEX_PAGE_LIMIT" envDefault:"100"`
}

// LoadClient parses environment variables into a [ClientConfig] struct.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse client environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid client environment: %w", err)
	}

	return cfg, nil
}

// Validate checks the client settings after flags have been applied on top
// of the environment.
func (c *ClientConfig) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	invalidURL := err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https")

	return (&validate.Validator{}).
		Custom("VVDEX_API_URL", invalidURL, "Must be an absolute http(s) URL").
		Custom("VVDEX_API_TIMEOUT", c.Timeout <= 0, "Must be a positive duration").
		Range("VVDEX_PAGE_LIMIT", c.PageLimit, 1, pagination.MaxLimit).
		Err()
}
