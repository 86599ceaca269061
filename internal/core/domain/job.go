package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	JobDraft  JobStatus = "draft"
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// validJobTransitions defines the allowed lifecycle transitions.
var validJobTransitions = map[JobStatus][]JobStatus{
	JobDraft: {JobOpen, JobClosed},
	JobOpen:  {JobClosed},
}

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJobTransition = errors.New("invalid job status transition")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validJobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Job is a content brief posted by a business for creators to pick up.
type Job struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	BusinessID  string    `json:"business_id" bson:"business_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	ContentType string    `json:"content_type" bson:"content_type"`
	BudgetUSD   float64   `json:"budget_usd" bson:"budget_usd"`
	Niches      []string  `json:"niches,omitempty" bson:"niches,omitempty"`
	Status      JobStatus `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
