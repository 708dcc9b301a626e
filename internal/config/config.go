package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	APIBaseURL        string
	SubmissionCount   int
	Handles           []string
	RequestTimeout    time.Duration
	DiscordWebhookURL string
	ScheduleCron      string
	HTTPAddr          string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	CacheTTL          time.Duration
	LogLevel          string
}

const (
	defaultAPIBaseURL      = "https://codeforces.com/api"
	defaultSubmissionCount = 10000
	defaultCron            = "0 9 * * *" // 09:00 every day
	defaultTimeout         = 30 * time.Second
	defaultHTTPAddr        = ":8080"
	defaultCacheTTL        = 10 * time.Minute
	defaultLogLevel        = "info"
)

var (
	ErrMissingWebhook = errors.New("DISCORD_WEBHOOK_URL is required for the digest")
	ErrMissingHandles = errors.New("CF_HANDLES is required for the digest")
)

// Load builds a Config from environment variables with sane defaults. A
// .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:        getenvDefault("CF_API_BASE_URL", defaultAPIBaseURL),
		SubmissionCount:   parseIntDefault("CF_SUBMISSION_COUNT", defaultSubmissionCount),
		Handles:           splitList(os.Getenv("CF_HANDLES")),
		RequestTimeout:    parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		ScheduleCron:      getenvDefault("SCHEDULE_CRON", defaultCron),
		HTTPAddr:          getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           parseIntDefault("REDIS_DB", 0),
		CacheTTL:          parseDurationDefault("CACHE_TTL", defaultCacheTTL),
		LogLevel:          getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.SubmissionCount <= 0 {
		cfg.SubmissionCount = defaultSubmissionCount
	}

	return cfg, nil
}

// ValidateDigest checks the settings only the scheduled digest needs.
func (c *Config) ValidateDigest() error {
	if c.DiscordWebhookURL == "" {
		return ErrMissingWebhook
	}
	if len(c.Handles) == 0 {
		return ErrMissingHandles
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
