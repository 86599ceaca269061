package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

const rateLimitsCollection = "rate_limits"

// RateLimitRepository persists one document per accepted request event in
// the shared rate_limits collection. It implements ports.RateLimitStore.
type RateLimitRepository struct {
	coll *mongo.Collection
}

func NewRateLimitRepository(db *mongo.Database) *RateLimitRepository {
	return &RateLimitRepository{coll: db.Collection(rateLimitsCollection)}
}

// PurgeBefore deletes all records for key older than cutoff. Best-effort
// garbage collection of expired counters.
func (r *RateLimitRepository) PurgeBefore(ctx context.Context, key string, cutoff time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{
		"key":        key,
		"created_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return fmt.Errorf("purge rate limits: %w", err)
	}
	return nil
}

// CountSince counts records for key created at or after cutoff.
func (r *RateLimitRepository) CountSince(ctx context.Context, key string, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"key":        key,
		"created_at": bson.M{"$gte": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("count rate limits: %w", err)
	}
	return n, nil
}

// Record inserts one request event for key at the given instant.
func (r *RateLimitRepository) Record(ctx context.Context, key string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, domain.RateLimitRecord{Key: key, CreatedAt: at})
	if err != nil {
		return fmt.Errorf("record rate limit: %w", err)
	}
	return nil
}

// EnsureIndexes creates the key+created_at index the window queries rely on.
func (r *RateLimitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "key", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
