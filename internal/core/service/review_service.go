package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type ReviewService struct {
	reviews  ports.ReviewRepository
	creators ports.CreatorRepository
	jobs     ports.JobRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	creators ports.CreatorRepository,
	jobs ports.JobRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		creators: creators,
		jobs:     jobs,
		notifier: notifier,
		log:      log,
	}
}

// Create records a review by the acting business about a creator for one of
// the business's own jobs, then refreshes the creator's aggregate rating and
// notifies the creator.
func (s *ReviewService) Create(ctx context.Context, principal *domain.Principal, input ports.CreateReviewInput) (*domain.Review, error) {
	if !principal.IsBusiness() {
		return nil, domain.ErrForbidden
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if job.BusinessID != principal.BusinessID {
		return nil, domain.ErrForbidden
	}

	creator, err := s.creators.FindByID(ctx, input.CreatorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reviews.Exists(ctx, principal.BusinessID, creator.ID, job.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateReview
	}

	review := &domain.Review{
		JobID:      job.ID,
		BusinessID: principal.BusinessID,
		CreatorID:  creator.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	// Refresh the aggregate; non-fatal because the review itself is saved.
	if avg, count, err := s.reviews.AverageForCreator(ctx, creator.ID); err != nil {
		s.log.Warn().Err(err).Str("creator_id", creator.ID).Msg("failed to compute rating aggregate")
	} else if err := s.creators.UpdateRating(ctx, creator.ID, avg, count); err != nil {
		s.log.Warn().Err(err).Str("creator_id", creator.ID).Msg("failed to update rating aggregate")
	}

	s.notifier.Enqueue(ports.NotificationInput{
		UserID:  creator.UserID,
		Kind:    domain.NotificationReviewReceived,
		Subject: "You received a new review",
		Body:    fmt.Sprintf("A business rated your work %d/5 for job %q.", input.Rating, job.Title),
	})

	s.log.Info().
		Str("review_id", created.ID).
		Str("creator_id", creator.ID).
		Str("business_id", principal.BusinessID).
		Int("rating", input.Rating).
		Msg("review created")

	return created, nil
}

func (s *ReviewService) ListForCreator(ctx context.Context, creatorID string, page, limit int) (*ports.ListReviewsResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.reviews.ListByCreator(ctx, creatorID, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListReviewsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Delete removes a review. Only the authoring business or an admin may
// delete; the creator's aggregate is refreshed afterwards.
func (s *ReviewService) Delete(ctx context.Context, principal *domain.Principal, id string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !principal.OwnsBusiness(review.BusinessID) {
		return domain.ErrForbidden
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	if avg, count, err := s.reviews.AverageForCreator(ctx, review.CreatorID); err != nil {
		s.log.Warn().Err(err).Str("creator_id", review.CreatorID).Msg("failed to compute rating aggregate")
	} else if err := s.creators.UpdateRating(ctx, review.CreatorID, avg, count); err != nil {
		s.log.Warn().Err(err).Str("creator_id", review.CreatorID).Msg("failed to update rating aggregate")
	}

	s.log.Info().Str("review_id", id).Msg("review deleted")
	return nil
}
