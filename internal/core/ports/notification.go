package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// NotificationInput is a single notification event routed through the
// dispatcher to the recipient's inbox.
type NotificationInput struct {
	UserID  string
	Kind    string
	Subject string
	Body    string
}

// NotificationService persists and logs a single notification.
type NotificationService interface {
	Process(ctx context.Context, input NotificationInput) error
}

// Notifier is the enqueue-side interface services use to emit notifications
// without blocking the request path.
type Notifier interface {
	Enqueue(input NotificationInput)
}

// NotificationRepository defines persistence for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
}
