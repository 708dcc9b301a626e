package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CF_API_BASE_URL", "CF_SUBMISSION_COUNT", "CF_HANDLES", "REQUEST_TIMEOUT",
		"DISCORD_WEBHOOK_URL", "SCHEDULE_CRON", "HTTP_ADDR", "REDIS_ADDR",
		"REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 10000, cfg.SubmissionCount)
	assert.Empty(t, cfg.Handles)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "0 9 * * *", cfg.ScheduleCron)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CF_HANDLES", "tourist, petr,,")
	t.Setenv("CF_SUBMISSION_COUNT", "500")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"tourist", "petr"}, cfg.Handles)
	assert.Equal(t, 500, cfg.SubmissionCount)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("CF_SUBMISSION_COUNT", "-3")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.SubmissionCount)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestValidateDigest(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.ValidateDigest(), ErrMissingWebhook)

	cfg.DiscordWebhookURL = "https://discord.test/hook"
	assert.ErrorIs(t, cfg.ValidateDigest(), ErrMissingHandles)

	cfg.Handles = []string{"tourist"}
	assert.NoError(t, cfg.ValidateDigest())
}
