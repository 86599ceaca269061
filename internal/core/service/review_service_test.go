package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

type reviewFixture struct {
	svc      *ReviewService
	reviews  *stubReviewRepo
	creators *stubCreatorRepo
	jobs     *stubJobRepo
	notifier *captureNotifier

	creator *domain.CreatorProfile
	job     *domain.Job
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	ctx := context.Background()

	f := &reviewFixture{
		reviews:  newStubReviewRepo(),
		creators: newStubCreatorRepo(),
		jobs:     newStubJobRepo(),
		notifier: &captureNotifier{},
	}
	f.svc = NewReviewService(f.reviews, f.creators, f.jobs, f.notifier, zerolog.Nop())

	f.creator, _ = f.creators.Create(ctx, &domain.CreatorProfile{UserID: "u-creator", DisplayName: "Ana"})
	f.job, _ = f.jobs.Create(ctx, &domain.Job{BusinessID: "b1", Title: "Unboxing", Status: domain.JobClosed})
	return f
}

func TestCreateReviewUpdatesAggregateAndNotifies(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, businessPrincipal("b1"), ports.CreateReviewInput{
		CreatorID: f.creator.ID,
		JobID:     f.job.ID,
		Rating:    4,
		Comment:   "great turnaround",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.Rating != 4 {
		t.Errorf("Rating = %d, want 4", review.Rating)
	}

	if f.creators.ratingID != f.creator.ID {
		t.Errorf("aggregate updated for %q, want %q", f.creators.ratingID, f.creator.ID)
	}
	if f.creators.ratingAvg != 4 || f.creators.ratingCnt != 1 {
		t.Errorf("aggregate = (%v, %d), want (4, 1)", f.creators.ratingAvg, f.creators.ratingCnt)
	}

	if len(f.notifier.inputs) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifier.inputs))
	}
	n := f.notifier.inputs[0]
	if n.UserID != "u-creator" || n.Kind != domain.NotificationReviewReceived {
		t.Errorf("unexpected notification: %+v", n)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.Create(context.Background(), businessPrincipal("b1"), ports.CreateReviewInput{
			CreatorID: f.creator.ID,
			JobID:     f.job.ID,
			Rating:    rating,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestCreateReviewRequiresJobOwnership(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.Create(context.Background(), businessPrincipal("b2"), ports.CreateReviewInput{
		CreatorID: f.creator.ID,
		JobID:     f.job.ID,
		Rating:    5,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	input := ports.CreateReviewInput{CreatorID: f.creator.ID, JobID: f.job.ID, Rating: 5}
	if _, err := f.svc.Create(ctx, businessPrincipal("b1"), input); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := f.svc.Create(ctx, businessPrincipal("b1"), input)
	if !errors.Is(err, domain.ErrDuplicateReview) {
		t.Fatalf("err = %v, want ErrDuplicateReview", err)
	}
}

func TestCreateReviewRequiresBusinessRole(t *testing.T) {
	f := newReviewFixture(t)
	creator := &domain.Principal{UserID: "u2", Role: domain.RoleCreator, CreatorID: "c9"}

	_, err := f.svc.Create(context.Background(), creator, ports.CreateReviewInput{
		CreatorID: f.creator.ID,
		JobID:     f.job.ID,
		Rating:    5,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestAdminCanDeleteAnyReview(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, businessPrincipal("b1"), ports.CreateReviewInput{
		CreatorID: f.creator.ID,
		JobID:     f.job.ID,
		Rating:    1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	admin := &domain.Principal{UserID: "u9", Role: domain.RoleAdmin}
	if err := f.svc.Delete(ctx, admin, review.ID); err != nil {
		t.Fatalf("admin Delete: %v", err)
	}
	if _, err := f.reviews.FindByID(ctx, review.ID); !errors.Is(err, domain.ErrReviewNotFound) {
		t.Fatal("review still present after admin delete")
	}
}

func TestDeleteReviewRefreshesAggregate(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, businessPrincipal("b1"), ports.CreateReviewInput{
		CreatorID: f.creator.ID,
		JobID:     f.job.ID,
		Rating:    2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// A stranger cannot delete, the author can.
	if err := f.svc.Delete(ctx, businessPrincipal("b2"), review.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := f.svc.Delete(ctx, businessPrincipal("b1"), review.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if f.creators.ratingCnt != 0 {
		t.Errorf("aggregate count = %d, want 0 after delete", f.creators.ratingCnt)
	}
}
