package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port           string
	DatabaseURL    string
	AuthServiceURL string
	AuthTimeout    time.Duration
	JWTSecret      string
	JWTIssuer      string
	JWTTTL         time.Duration
	CORSOrigins    []string
	AdminsPath     string
	CustomersSeed  string
	DashboardPath  string
}

// Load reads configuration from the environment and performs minimal validation.
// DATABASE_URL is optional: without it the customer directory lives in memory
// for the lifetime of the process.
func Load() (Config, error) {
	cfg := Config{
		Port:           fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AuthServiceURL: strings.TrimSpace(os.Getenv("AUTH_SERVICE_URL")),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:      fallback(os.Getenv("JWT_ISSUER"), "platedash-admin"),
		CORSOrigins:    parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		AdminsPath:     fallback(os.Getenv("ADMINS_PATH"), "config/admins.yaml"),
		CustomersSeed:  strings.TrimSpace(os.Getenv("CUSTOMERS_SEED_PATH")),
		DashboardPath:  strings.TrimSpace(os.Getenv("DASHBOARD_PATH")),
	}

	cfg.JWTTTL = minutesOrDefault("JWT_TTL_MINUTES", 60)
	cfg.AuthTimeout = secondsOrDefault("AUTH_TIMEOUT_SECONDS", 10)

	if cfg.AuthServiceURL == "" {
		return Config{}, errors.New("AUTH_SERVICE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func minutesOrDefault(key string, def int) time.Duration {
	raw := fallback(os.Getenv(key), strconv.Itoa(def))
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Minute
	}
	return time.Duration(def) * time.Minute
}

func secondsOrDefault(key string, def int) time.Duration {
	raw := fallback(os.Getenv(key), strconv.Itoa(def))
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return time.Duration(def) * time.Second
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
