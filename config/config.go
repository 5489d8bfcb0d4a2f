package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAlmanacBaseURL = "https://gwala.krishnayangauraksha.org"
	defaultAlmanacTimeout = 30 * time.Second
	defaultMonthCacheTTL  = 12 * time.Hour
	defaultSheetTab       = "Reminders"
)

// Config holds environment-driven settings for the panchang API.
type Config struct {
	DatabaseURL      string
	Port             int
	BearerToken      string
	AlmanacBaseURL   string
	AlmanacAuthToken string
	AlmanacTimeout   time.Duration
	RedisURL         string
	MonthCacheTTL    time.Duration
	SheetID          string
	SheetTab         string
	CredentialsFile  string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:           8080,
		AlmanacBaseURL: defaultAlmanacBaseURL,
		AlmanacTimeout: defaultAlmanacTimeout,
		MonthCacheTTL:  defaultMonthCacheTTL,
		SheetTab:       defaultSheetTab,
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	if base := strings.TrimSpace(os.Getenv("ALMANAC_BASE_URL")); base != "" {
		cfg.AlmanacBaseURL = strings.TrimRight(base, "/")
	}
	cfg.AlmanacAuthToken = strings.TrimSpace(os.Getenv("ALMANAC_AUTH_TOKEN"))

	if v := strings.TrimSpace(os.Getenv("ALMANAC_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid ALMANAC_TIMEOUT: %w", err)
		}
		cfg.AlmanacTimeout = d
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	if v := strings.TrimSpace(os.Getenv("MONTH_CACHE_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid MONTH_CACHE_TTL: %w", err)
		}
		cfg.MonthCacheTTL = d
	}

	cfg.SheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID"))
	if tab := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_TAB")); tab != "" {
		cfg.SheetTab = tab
	}
	cfg.CredentialsFile = strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_FILE"))

	return cfg, nil
}

// SheetConfigured reports whether the sheet append target is fully set up.
func (c Config) SheetConfigured() bool {
	return c.SheetID != "" && c.CredentialsFile != ""
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
