package ports

import (
	"context"

	"github.com/lawconnect/case-management/internal/core/domain"
)

// ListNotificationsFilter carries the query parameters for listing
// notifications. A nil ClientID returns notifications for all recipients.
type ListNotificationsFilter struct {
	ClientID *int64
	Limit    int64 // max rows, newest first; <= 0 means the repository default
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, filter ListNotificationsFilter) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}
