package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation that
// persists notifications to the repository.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Process persists a single notification for its recipient.
func (s *notificationService) Process(ctx context.Context, in ports.NotificationInput) error {
	n := &domain.Notification{
		UserID:    in.UserID,
		Kind:      in.Kind,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return err
	}

	s.log.Debug().
		Str("user_id", in.UserID).
		Str("kind", in.Kind).
		Msg("notification delivered")

	return nil
}
