package ports

import (
	"context"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title       string
	Description string
	ContentType string
	BudgetUSD   float64
	Niches      []string
	Draft       bool
}

// ListJobsResult is the paginated list view.
type ListJobsResult struct {
	Items      []domain.Job
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job postings. Mutations are
// gated by a single ownership check: the acting principal must own the job's
// business (admins bypass).
type JobService interface {
	Create(ctx context.Context, principal *domain.Principal, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) (*ListJobsResult, error)
	ChangeStatus(ctx context.Context, principal *domain.Principal, id string, status domain.JobStatus) (*domain.Job, error)
	Delete(ctx context.Context, principal *domain.Principal, id string) error
}
