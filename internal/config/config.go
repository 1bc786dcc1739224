// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is used when PORT is unset.
	DefaultPort = 8080

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Storage backends.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds the configuration for the service.
type Config struct {
	Host string
	Port int

	LogLevel  string
	LogFormat string

	// StaticPath overrides the embedded landing page with a directory on disk.
	StaticPath string

	Storage string
	DBPath  string

	SeedData        bool
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Host:       os.Getenv("HOST"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
		StaticPath: os.Getenv("STATIC_PATH"),
		Storage:    strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DBPath:     os.Getenv("DB_PATH"),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 0 and 65535, got %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if v := os.Getenv("SEED_DATA"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SEED_DATA must be a boolean, got %q", v)
		}
		cfg.SeedData = seed
	}

	cfg.ShutdownTimeout = DefaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	switch cfg.Storage {
	case StorageMemory, StorageSQLite:
	default:
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StorageSQLite, cfg.Storage)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
