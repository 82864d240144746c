package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lawconnect/case-management/internal/core/domain"
	"github.com/lawconnect/case-management/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Process persists a single queued notification event.
func (s *notificationService) Process(ctx context.Context, in ports.NotificationInput) error {
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	n := &domain.Notification{
		Type:      in.Type,
		Title:     in.Title,
		Message:   in.Message,
		Priority:  priority,
		ClientID:  in.ClientID,
		CreatedAt: createdAt,
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return fmt.Errorf("process notification: %w", err)
	}

	s.log.Debug().
		Str("type", n.Type).
		Str("title", n.Title).
		Msg("notification stored")

	return nil
}
