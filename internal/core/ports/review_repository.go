package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// Exists reports whether this business already reviewed this creator for
	// this job.
	Exists(ctx context.Context, businessID, creatorID, jobID string) (bool, error)
	ListByCreator(ctx context.Context, creatorID string, page, limit int) ([]domain.Review, int64, error)
	// AverageForCreator returns the mean rating and count across all reviews
	// of a creator.
	AverageForCreator(ctx context.Context, creatorID string) (float64, int, error)
	Delete(ctx context.Context, id string) error
}
