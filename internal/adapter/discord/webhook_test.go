package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cftracker/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func TestSendPostsEmbed(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, time.Second, nopLogger{})
	hook.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	err := hook.Send(context.Background(), model.Notification{
		Title:       "Codeforces digest for tourist",
		URL:         "https://codeforces.com/profile/tourist",
		Description: "summary",
		Color:       0x1F8ACB,
		Fields:      []model.NotificationField{{Name: "Solved by rating", Value: "```\n  800 █ 1\n```"}},
	})
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	e := got.Embeds[0]
	assert.Equal(t, "Codeforces digest for tourist", e.Title)
	assert.Equal(t, "https://codeforces.com/profile/tourist", e.URL)
	assert.Equal(t, 0x1F8ACB, e.Color)
	assert.Equal(t, "2024-05-01T09:00:00Z", e.Timestamp)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "Solved by rating", e.Fields[0].Name)
}

func TestSendFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL, time.Second, nopLogger{}).Send(context.Background(), model.Notification{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestSendRequiresURL(t *testing.T) {
	err := NewWebhook("", time.Second, nopLogger{}).Send(context.Background(), model.Notification{})
	assert.Error(t, err)
}

func TestTruncateIsRuneSafe(t *testing.T) {
	value := strings.Repeat("█", 10)
	got := truncate(value, 6)
	assert.Equal(t, "███...", got)
	assert.Equal(t, value, truncate(value, 10))
}

func TestTruncateBlockKeepsFenceClosed(t *testing.T) {
	value := "```\n" + strings.Repeat("1200 ██████ 6\n", 200) + "```"
	got := truncateBlock(value, maxFieldValue)

	assert.LessOrEqual(t, len([]rune(got)), maxFieldValue)
	assert.True(t, strings.HasPrefix(got, "```"))
	assert.True(t, strings.HasSuffix(got, "\n```"))
}
