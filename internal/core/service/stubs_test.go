package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
	"github.com/creatorhub/marketplace-api/internal/core/ports"
)

// In-memory stub repositories shared by the service tests. Each stub allows
// injecting errors to exercise failure paths.

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = "u" + strconv.Itoa(r.nextID)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubCreatorRepo struct {
	profiles  map[string]*domain.CreatorProfile
	nextID    int
	findErr   error
	ratingID  string
	ratingAvg float64
	ratingCnt int
}

func newStubCreatorRepo() *stubCreatorRepo {
	return &stubCreatorRepo{profiles: make(map[string]*domain.CreatorProfile)}
}

func (r *stubCreatorRepo) Create(_ context.Context, p *domain.CreatorProfile) (*domain.CreatorProfile, error) {
	r.nextID++
	clone := *p
	clone.ID = "c" + strconv.Itoa(r.nextID)
	r.profiles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCreatorRepo) FindByID(_ context.Context, id string) (*domain.CreatorProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrCreatorNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubCreatorRepo) FindByUserID(_ context.Context, userID string) (*domain.CreatorProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.profiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrCreatorNotFound
}

func (r *stubCreatorRepo) Update(_ context.Context, p *domain.CreatorProfile) error {
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *stubCreatorRepo) List(_ context.Context, filter ports.CreatorFilter) ([]domain.CreatorProfile, int64, error) {
	var out []domain.CreatorProfile
	for _, p := range r.profiles {
		if filter.Search != "" && !strings.Contains(p.DisplayName, filter.Search) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubCreatorRepo) UpdateRating(_ context.Context, id string, avg float64, count int) error {
	r.ratingID = id
	r.ratingAvg = avg
	r.ratingCnt = count
	if p, ok := r.profiles[id]; ok {
		p.AvgRating = avg
		p.ReviewCount = count
	}
	return nil
}

type stubBusinessRepo struct {
	profiles map[string]*domain.BusinessProfile
	nextID   int
	findErr  error
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{profiles: make(map[string]*domain.BusinessProfile)}
}

func (r *stubBusinessRepo) Create(_ context.Context, p *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	r.nextID++
	clone := *p
	clone.ID = "b" + strconv.Itoa(r.nextID)
	r.profiles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.BusinessProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrBusinessNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubBusinessRepo) FindByUserID(_ context.Context, userID string) (*domain.BusinessProfile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.profiles {
		if p.UserID == userID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrBusinessNotFound
}

func (r *stubBusinessRepo) FindByStripeCustomer(_ context.Context, customerID string) (*domain.BusinessProfile, error) {
	for _, p := range r.profiles {
		if p.StripeCustomerID == customerID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrBusinessNotFound
}

func (r *stubBusinessRepo) Update(_ context.Context, p *domain.BusinessProfile) error {
	clone := *p
	r.profiles[p.ID] = &clone
	return nil
}

func (r *stubBusinessRepo) SetStripeCustomer(_ context.Context, id, customerID string) error {
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	p.StripeCustomerID = customerID
	return nil
}

func (r *stubBusinessRepo) SetPlan(_ context.Context, id, plan, status string) error {
	p, ok := r.profiles[id]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	p.Plan = plan
	p.SubscriptionStatus = status
	return nil
}

type stubJobRepo struct {
	jobs    map[string]*domain.Job
	nextID  int
	findErr error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	clone := *job
	clone.ID = "j" + strconv.Itoa(r.nextID)
	r.jobs[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, filter ports.JobFilter) ([]domain.Job, int64, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if filter.Status != "" && string(j.Status) != filter.Status {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *stubJobRepo) UpdateStatus(_ context.Context, id string, status domain.JobStatus) error {
	j, ok := r.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type stubReviewRepo struct {
	reviews map[string]*domain.Review
	nextID  int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	clone := *review
	clone.ID = "r" + strconv.Itoa(r.nextID)
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) Exists(_ context.Context, businessID, creatorID, jobID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.BusinessID == businessID && rev.CreatorID == creatorID && rev.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReviewRepo) ListByCreator(_ context.Context, creatorID string, _, _ int) ([]domain.Review, int64, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.CreatorID == creatorID {
			out = append(out, *rev)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubReviewRepo) AverageForCreator(_ context.Context, creatorID string) (float64, int, error) {
	var sum, count int
	for _, rev := range r.reviews {
		if rev.CreatorID == creatorID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

// memLimitStore is an in-memory rate limit store with injectable failures.
type memLimitStore struct {
	records   map[string][]time.Time
	purgeErr  error
	countErr  error
	recordErr error
}

func newMemLimitStore() *memLimitStore {
	return &memLimitStore{records: make(map[string][]time.Time)}
}

func (s *memLimitStore) PurgeBefore(_ context.Context, key string, cutoff time.Time) error {
	if s.purgeErr != nil {
		return s.purgeErr
	}
	kept := s.records[key][:0]
	for _, at := range s.records[key] {
		if !at.Before(cutoff) {
			kept = append(kept, at)
		}
	}
	s.records[key] = kept
	return nil
}

func (s *memLimitStore) CountSince(_ context.Context, key string, cutoff time.Time) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	var n int64
	for _, at := range s.records[key] {
		if !at.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

func (s *memLimitStore) Record(_ context.Context, key string, at time.Time) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.records[key] = append(s.records[key], at)
	return nil
}

// captureNotifier records enqueued notifications for assertions.
type captureNotifier struct {
	inputs []ports.NotificationInput
}

func (n *captureNotifier) Enqueue(input ports.NotificationInput) {
	n.inputs = append(n.inputs, input)
}

// stubGateway fakes the payment provider.
type stubGateway struct {
	customers   int
	checkoutURL string
	portalURL   string
	event       *ports.WebhookEvent
	parseErr    error
}

func (g *stubGateway) EnsureCustomer(_ context.Context, _, _ string) (string, error) {
	g.customers++
	return "cus_" + strconv.Itoa(g.customers), nil
}

func (g *stubGateway) CreateCheckoutSession(_ context.Context, _, _ string) (string, error) {
	return g.checkoutURL, nil
}

func (g *stubGateway) CreatePortalSession(_ context.Context, _ string) (string, error) {
	return g.portalURL, nil
}

func (g *stubGateway) ParseWebhook(_ []byte, _ string) (*ports.WebhookEvent, error) {
	if g.parseErr != nil {
		return nil, g.parseErr
	}
	return g.event, nil
}
