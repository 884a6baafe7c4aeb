/*
Package config loads service configuration from YAML and the environment.

PURPOSE:
  One YAML file (or bare environment variables on small deployments)
  configures the HTTP server, the SQLite database path, session tokens,
  and the account directory. Environment variables override the file.
*/
package config

import (
	"fmt"
	"time"

	"github.com/digimons/facility-engine/auth"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (c ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// DatabaseConfig holds SQLite settings. An empty path keeps everything in
// memory, which is how the tests run.
type DatabaseConfig struct {
	Path string `yaml:"path" env:"DATABASE_PATH" env-default:"facility.db"`
}

// AuthConfig holds session token settings and the account directory.
type AuthConfig struct {
	JWTSecret string         `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:"change-me-in-production"`
	JWTIssuer string         `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"facility-engine"`
	TokenTTL  time.Duration  `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"12h"`
	Accounts  []auth.Account `yaml:"accounts"`
}

// CORSConfig holds cross-origin settings for the browser frontend.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	MaxAge         int      `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"300"`
}

// Directory builds the login directory, falling back to the seed accounts
// when the file configures none.
func (c AuthConfig) Directory() *auth.Directory {
	accounts := c.Accounts
	if len(accounts) == 0 {
		accounts = auth.DefaultAccounts()
	}
	return auth.NewDirectory(accounts)
}

// Tokens builds the session token manager.
func (c AuthConfig) Tokens() *auth.TokenManager {
	return auth.NewTokenManager(c.JWTSecret, c.JWTIssuer, c.TokenTTL)
}
