package domain

import (
	"errors"
	"time"
)

var ErrCreatorNotFound = errors.New("creator profile not found")

// CreatorProfile is the public-facing profile of a UGC creator, owned 1:1 by
// a user with the creator role.
type CreatorProfile struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserID       string    `json:"user_id" bson:"user_id"`
	DisplayName  string    `json:"display_name" bson:"display_name"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Niches       []string  `json:"niches,omitempty" bson:"niches,omitempty"`
	PortfolioURL string    `json:"portfolio_url,omitempty" bson:"portfolio_url,omitempty"`
	RatePerVideo float64   `json:"rate_per_video,omitempty" bson:"rate_per_video,omitempty"`
	AvgRating    float64   `json:"avg_rating" bson:"avg_rating"`
	ReviewCount  int       `json:"review_count" bson:"review_count"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
