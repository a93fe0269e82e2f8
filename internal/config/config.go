package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token           string
	GuildID         string
	EventsChannelID string
	ModeratorUserID string
	DatabaseURL     string
	MigrationsPath  string
	DefaultLocale   string
	PollOnApprove   bool
	SessionTTL      time.Duration
	MetricsAddr     string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:           os.Getenv("TOKEN"),
		GuildID:         os.Getenv("GUILD_ID"),
		EventsChannelID: os.Getenv("EVENTS_CHANNEL_ID"),
		ModeratorUserID: os.Getenv("MODERATOR_USER_ID"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		PollOnApprove:   true,
		SessionTTL:      24 * time.Hour,
	}

	switch strings.ToLower(os.Getenv("POLL_ON_APPROVE")) {
	case "", "1", "true", "yes":
	case "0", "false", "no":
		cfg.PollOnApprove = false
	default:
		return nil, fmt.Errorf("config: POLL_ON_APPROVE must be a boolean")
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("config: SESSION_TTL must be a positive duration (e.g. 24h)")
		}
		cfg.SessionTTL = ttl
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	for _, field := range []struct {
		name, value string
	}{
		{"GUILD_ID", c.GuildID},
		{"EVENTS_CHANNEL_ID", c.EventsChannelID},
		{"MODERATOR_USER_ID", c.ModeratorUserID},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("config: %s is required and cannot be empty", field.name)
		}
		for _, r := range field.value {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: %s must be a Discord snowflake (digits only)", field.name)
			}
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/eventbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "uk"
	}

	return nil
}
