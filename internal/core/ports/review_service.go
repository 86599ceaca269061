package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// CreateReviewInput carries the fields of a new review.
type CreateReviewInput struct {
	CreatorID string
	JobID     string
	Rating    int
	Comment   string
}

// ListReviewsResult is the paginated list view.
type ListReviewsResult struct {
	Items      []domain.Review
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ReviewService defines use-case operations for reviews. Only businesses may
// create reviews; only the authoring business or an admin may delete one.
type ReviewService interface {
	Create(ctx context.Context, principal *domain.Principal, input CreateReviewInput) (*domain.Review, error)
	ListForCreator(ctx context.Context, creatorID string, page, limit int) (*ListReviewsResult, error)
	Delete(ctx context.Context, principal *domain.Principal, id string) error
}
