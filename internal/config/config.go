// Package config reads the server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mmynk/brewandbake/internal/session"
)

// Config holds the server settings.
type Config struct {
	Port          int
	DBPath        string
	StaticPath    string
	SessionSecret string
	SessionTTL    time.Duration
	SweepInterval time.Duration
	LogLevel      string
	LogFormat     string

	// SecretGenerated is set when SESSION_SECRET was empty and a random one
	// was made up. Tokens then stop working after a restart.
	SecretGenerated bool
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration. Variables from envFile are added to the
// environment first unless they are already set; a missing file is ignored.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		DBPath:        getEnv("DB_PATH", "./data/brewandbake.db"),
		StaticPath:    getEnv("STATIC_PATH", "../frontend/build"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", session.DefaultTTL); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = parseDuration("SESSION_SWEEP_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = uuid.NewString()
		cfg.SecretGenerated = true
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration like 30m", key, raw)
	}
	return d, nil
}
