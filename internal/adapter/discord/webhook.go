package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

// Discord embed limits.
const (
	maxTitle       = 256
	maxDescription = 4096
	maxFieldName   = 256
	maxFieldValue  = 1024
	maxFields      = 25
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string            `json:"title"`
	URL         string            `json:"url,omitempty"`
	Description string            `json:"description"`
	Color       int               `json:"color"`
	Timestamp   string            `json:"timestamp"`
	Fields      []embedField      `json:"fields,omitempty"`
	Footer      map[string]string `json:"footer"`
}

type payload struct {
	Content string  `json:"content"`
	Embeds  []embed `json:"embeds"`
}

// Send posts the notification to Discord as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := json.Marshal(payload{
		Embeds: []embed{{
			Title:       truncate(notification.Title, maxTitle),
			URL:         notification.URL,
			Description: truncate(notification.Description, maxDescription),
			Color:       notification.Color,
			Timestamp:   w.now().UTC().Format(time.RFC3339),
			Fields:      convertFields(notification.Fields),
			Footer:      map[string]string{"text": "cftracker • data from codeforces.com"},
		}},
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	w.logger.Info(ctx, "notification sent to discord", "title", notification.Title)
	return nil
}

func convertFields(fields []model.NotificationField) []embedField {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	result := make([]embedField, 0, len(fields))
	for _, field := range fields {
		result = append(result, embedField{
			Name:   truncate(field.Name, maxFieldName),
			Value:  truncateBlock(field.Value, maxFieldValue),
			Inline: field.Inline,
		})
	}
	return result
}

// truncate cuts value to at most limit runes, marking the cut with an ellipsis.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}

// truncateBlock is truncate for values that may be a ``` code block; the
// fence is closed again after cutting.
func truncateBlock(value string, limit int) string {
	const fence = "```"
	if !strings.HasPrefix(value, fence) || len([]rune(value)) <= limit {
		return truncate(value, limit)
	}
	cut := truncate(strings.TrimSuffix(value, fence), limit-len(fence)-1)
	return cut + "\n" + fence
}
