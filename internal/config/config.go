package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	Port               string
	PublicBaseURL      string
	AdminEmails        []string
	OpenAIEndpoint     string
	OpenAIKey          string
	OpenAIDeployment   string
	UseMockEnrich      bool
	EnableClearbitLogo bool
	RateLimitEnrich    RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("PORT", "8080"),
		PublicBaseURL:      strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		AdminEmails:        parseEmailList(os.Getenv("ADMIN_EMAILS")),
		OpenAIEndpoint:     os.Getenv("AZURE_OPENAI_ENDPOINT"),
		OpenAIKey:          os.Getenv("AZURE_OPENAI_KEY"),
		OpenAIDeployment:   os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		UseMockEnrich:      parseBool(os.Getenv("USE_MOCK_ENRICH")),
		EnableClearbitLogo: parseBool(os.Getenv("ENABLE_CLEARBIT_LOGO")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_ENRICH", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ENRICH value: %w", err)
	}
	cfg.RateLimitEnrich = rl

	return cfg, nil
}

// ModelConfigured reports whether all settings required for real enrichment
// calls are present.
func (c *Config) ModelConfigured() bool {
	return c.OpenAIEndpoint != "" && c.OpenAIKey != "" && c.OpenAIDeployment != ""
}

func parseEmailList(value string) []string {
	parts := strings.Split(value, ",")
	emails := make([]string, 0, len(parts))
	for _, part := range parts {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
