package ports

import (
	"context"
	"time"
)

// NotificationInput is the DTO passed from producers (entity services) through
// the dispatcher to the NotificationService.
type NotificationInput struct {
	Type      string
	Title     string
	Message   string
	Priority  string
	ClientID  *int64 // optional: scope the notification to one client
	CreatedAt time.Time
}

// NotificationService processes queued notification events.
type NotificationService interface {
	Process(ctx context.Context, input NotificationInput) error
}
