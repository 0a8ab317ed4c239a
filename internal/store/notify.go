package store

import (
	"context"
	"log/slog"
)

// Event is a user-facing confirmation emitted after a successful mutation,
// mirroring the toast notifications of the dashboard UI.
type Event struct {
	Title       string
	Description string
}

// Notifier receives confirmation events. Implementations must not block;
// the store calls Notify synchronously after persisting.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, event Event)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, event Event) {
	f(ctx, event)
}

// NewLogNotifier returns a Notifier that records events on the logger.
func NewLogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return NotifierFunc(func(ctx context.Context, event Event) {
		logger.InfoContext(ctx, "notification", "title", event.Title, "description", event.Description)
	})
}
