// Package config loads the server configuration from environment variables,
// with development defaults matching the original deployment.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the portfolio server.
//
// Fields:
//   - Port: HTTP listen port.
//   - CORSOrigin: the one client origin allowed to call the API cross-origin.
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//   - TokenTTL: session token lifetime.
//   - AdminUsername / AdminPassword: the fixed admin credential pair.
//   - DatabaseDSN: Postgres DSN; empty selects the embedded file store.
//   - DatabaseName: database applied to a DSN that names none, and the
//     snapshot name used by the file store.
//   - DataDir: directory for the embedded store's snapshots.
//   - Env: "production" enforces strict TLS certificate verification on the
//     store connection; anything else relaxes it for local development.
type Config struct {
	Port          string
	CORSOrigin    string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
	DatabaseDSN   string
	DatabaseName  string
	DataDir       string
	Env           string
}

// Load reads the environment and returns a populated Config.
// NOTE: the defaults are insecure for production and should be overridden.
func Load() Config {
	ttl := 6 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}

	return Config{
		Port:          get("PORT", "3001"),
		CORSOrigin:    get("CORS_ORIGIN", "http://localhost:5173"),
		JWTSecret:     get("JWT_SECRET", "change-this-secret"),
		TokenTTL:      ttl,
		AdminUsername: get("ADMIN_USERNAME", "manik12345"),
		AdminPassword: get("ADMIN_PASSWORD", "admin12345"),
		DatabaseDSN:   get("DATABASE_DSN", ""),
		DatabaseName:  get("DATABASE_NAME", "advportfolio"),
		DataDir:       get("DATA_DIR", "./data"),
		Env:           get("APP_ENV", "development"),
	}
}

// Production reports whether strict transport verification applies.
func (c Config) Production() bool {
	return c.Env == "production"
}

// get returns the value of the environment variable k or def if not set.
func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
