// Package config centralises configuration parsing for the API server.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the API server.
type Config struct {
	HTTPAddress          string
	SessionSecret        string
	SessionIssuer        string
	SessionTTL           time.Duration // Lifetime of a login session and its cookie.
	SessionPruneInterval time.Duration // Interval between expired-session sweeps.
	EventBrokers         []string      // Kafka brokers; empty disables event publishing.
	EventTopic           string
	CORSOrigin           string
	CookieSecure         bool
	SeedDemoData         bool
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:          getEnv("HTTP_ADDRESS", ":8080"),
		SessionSecret:        getEnv("SESSION_SECRET", "fitlife-secret"),
		SessionIssuer:        getEnv("SESSION_ISSUER", "fitlife.api"),
		SessionTTL:           getDurationEnv("SESSION_TTL", 24*time.Hour),
		SessionPruneInterval: getDurationEnv("SESSION_PRUNE_INTERVAL", time.Hour),
		EventTopic:           getEnv("EVENT_TOPIC", "fitlife_events"),
		CORSOrigin:           getEnv("CORS_ORIGIN", "http://localhost:5173"),
		CookieSecure:         getBoolEnv("COOKIE_SECURE", false),
		SeedDemoData:         getBoolEnv("SEED_DEMO_DATA", true),
	}

	cfg.EventBrokers = splitAndTrim(getEnv("EVENT_BROKERS", ""))
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "1", "true", "yes":
			return true
		case "0", "false", "no":
			return false
		}
	}
	return fallback
}
