// Package config loads process settings for the catalog commands from the
// environment, reading a .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-level settings. Flags override these in the commands.
type Config struct {
	// Server
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
	MaxSessions     int

	// Rendering
	Theme    string
	Variant  string
	Renderer string
	Locale   string

	// Data; blank uses the embedded catalog and themes
	CatalogDir string
	ThemeDir   string
}

// Load reads configuration from environment variables after loading the
// given .env files (".env" when none are named). Missing files are ignored.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := &Config{
		Addr:            getEnv(EnvAddr, ":8080"),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, "info")),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 10*time.Second),
		MaxSessions:     getIntEnv(EnvMaxSessions, 1000),

		Theme:    getEnv(EnvTheme, ""),
		Variant:  getEnv(EnvVariant, ""),
		Renderer: getEnv(EnvRenderer, "vanilla"),
		Locale:   getEnv(EnvLocale, "en"),

		CatalogDir: getEnv(EnvCatalogDir, ""),
		ThemeDir:   getEnv(EnvThemeDir, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, fmt.Errorf("%s is required", EnvAddr))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvShutdownTimeout))
	}
	if c.MaxSessions < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", EnvMaxSessions))
	}
	for _, dir := range []struct{ key, path string }{{EnvCatalogDir, c.CatalogDir}, {EnvThemeDir, c.ThemeDir}} {
		if dir.path == "" {
			continue
		}
		info, err := os.Stat(dir.path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dir.key, err))
			continue
		}
		if !info.IsDir() {
			errs = append(errs, fmt.Errorf("%s: %s is not a directory", dir.key, dir.path))
		}
	}
	return errors.Join(errs...)
}

// Level returns the slog level for LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds a text logger writing to stderr at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: unknown level %q", EnvLogLevel, raw)
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := getEnv(key, ""); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := getEnv(key, ""); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
