// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL - either set DatabaseURL directly, or the individual fields.
	// When neither is set the service runs on the in-memory store (dev mode).
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Server
	Port           string
	Debug          bool
	RequestTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win. A missing .env
// is fine; an unreadable or malformed one is an error.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	// Defaults
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "novellia_pets")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("REQUEST_TIMEOUT", "10s")

	return &Config{
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBUser:         v.GetString("DB_USER"),
		DBPass:         v.GetString("DB_PASS"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		Port:           v.GetString("PORT"),
		Debug:          v.GetBool("DEBUG"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}, nil
}

// HasDatabase reports whether enough is configured to reach Postgres.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != "" || c.DBUser != ""
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func newViper() (*viper.Viper, error) {
	// .env is optional (production uses real env vars), but a file that
	// exists and cannot be loaded must not be ignored.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	return v, nil
}
