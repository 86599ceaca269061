package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type JobService struct {
	repo       ports.JobRepository
	businesses ports.BusinessRepository
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewJobService(
	repo ports.JobRepository,
	businesses ports.BusinessRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *JobService {
	return &JobService{repo: repo, businesses: businesses, notifier: notifier, log: log}
}

// authorizeJobMutation is the single ownership gate for all job mutations:
// the acting principal must own the job's business, admins bypass.
func authorizeJobMutation(principal *domain.Principal, job *domain.Job) error {
	if principal.OwnsBusiness(job.BusinessID) {
		return nil
	}
	return domain.ErrForbidden
}

func (s *JobService) Create(ctx context.Context, principal *domain.Principal, input ports.CreateJobInput) (*domain.Job, error) {
	if !principal.IsBusiness() {
		return nil, domain.ErrForbidden
	}

	status := domain.JobOpen
	if input.Draft {
		status = domain.JobDraft
	}

	now := time.Now().UTC()
	job := &domain.Job{
		BusinessID:  principal.BusinessID,
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		BudgetUSD:   input.BudgetUSD,
		Niches:      input.Niches,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("business_id", principal.BusinessID).Msg("failed to create job")
		return nil, err
	}

	s.log.Info().Str("job_id", created.ID).Str("business_id", created.BusinessID).Msg("job created")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, filter ports.JobFilter) (*ports.ListJobsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListJobsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *JobService) ChangeStatus(ctx context.Context, principal *domain.Principal, id string, status domain.JobStatus) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeJobMutation(principal, job); err != nil {
		return nil, err
	}

	if !job.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidJobTransition, job.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	job.Status = status
	job.UpdatedAt = time.Now().UTC()
	s.log.Info().Str("job_id", id).Str("status", string(status)).Msg("job status changed")

	if status == domain.JobClosed {
		s.notifyClosed(ctx, job)
	}
	return job, nil
}

// notifyClosed tells the posting business its job is closed. Best-effort:
// the status change already committed.
func (s *JobService) notifyClosed(ctx context.Context, job *domain.Job) {
	owner, err := s.businesses.FindByID(ctx, job.BusinessID)
	if err != nil {
		s.log.Warn().Err(err).Str("job_id", job.ID).Msg("failed to resolve job owner for notification")
		return
	}

	s.notifier.Enqueue(ports.NotificationInput{
		UserID:  owner.UserID,
		Kind:    domain.NotificationJobClosed,
		Subject: "Job closed",
		Body:    fmt.Sprintf("Your job %q is now closed to new creators.", job.Title),
	})
}

func (s *JobService) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeJobMutation(principal, job); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("job_id", id).Msg("job deleted")
	return nil
}
