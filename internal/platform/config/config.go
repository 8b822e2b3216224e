// Package config loads the process configuration from environment variables.
// Everything is read once at startup and injected; components never read the
// environment themselves.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hackathon_backend/internal/platform/db"
)

const (
	defaultPort          = "8080"
	defaultTokenTTL      = 720 * time.Hour // 30 days
	defaultUploadDir     = "uploads"
	defaultMaxUploadSize = 5 << 20 // 5 MB
)

// Config holds all process-wide settings.
type Config struct {
	Port string

	DB db.Config

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string
	TokenTTL  time.Duration

	// Sentinel admin credentials. The sentinel admin has no database row and
	// must be able to log in even when the database is unreachable.
	AdminEmail    string
	AdminPassword string

	UploadDir     string
	MaxUploadSize int64

	CORSOrigins []string

	RunMigrations bool
}

// Load reads the configuration from the environment, applying defaults for
// optional values.
func Load() *Config {
	return &Config{
		Port: getenv("PORT", defaultPort),
		DB: db.Config{
			User:         os.Getenv("DB_USER"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         os.Getenv("DB_NAME"),
			Host:         getenv("DB_HOST", "127.0.0.1"),
			Port:         getenv("DB_PORT", "3306"),
			InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		},
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getduration("TOKEN_TTL", defaultTokenTTL),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadDir:     getenv("UPLOAD_DIR", defaultUploadDir),
		MaxUploadSize: getint64("MAX_UPLOAD_SIZE", defaultMaxUploadSize),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getint64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// splitList parses a comma-separated environment value into a slice,
// trimming whitespace and dropping empty entries.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
