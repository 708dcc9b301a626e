package ports

import (
	"context"

	"cftracker/internal/domain/model"
)

// Notifier delivers digest messages to a downstream channel such as Discord.
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
