package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrDuplicateReview = errors.New("review already exists for this job")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is left by a business about a creator after a completed job.
// At most one review per (business, creator, job) triple.
type Review struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	JobID      string    `json:"job_id" bson:"job_id"`
	BusinessID string    `json:"business_id" bson:"business_id"`
	CreatorID  string    `json:"creator_id" bson:"creator_id"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
