package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// JobFilter narrows List results.
type JobFilter struct {
	BusinessID  string
	Status      string
	ContentType string
	Niche       string
	Page        int
	Limit       int
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobStatus) error
	Delete(ctx context.Context, id string) error
}
