package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// indexed is implemented by every repository that declares indexes.
type indexed interface {
	EnsureIndexes(ctx context.Context) error
}

// indexedRepositories maps each collection to the repository that owns its
// index definitions. Every repository with an EnsureIndexes method must be
// listed here or its indexes are never created.
func indexedRepositories(db *mongo.Database) map[string]indexed {
	return map[string]indexed{
		"users":         NewUserRepository(db),
		"creators":      NewCreatorRepository(db),
		"businesses":    NewBusinessRepository(db),
		"jobs":          NewJobRepository(db),
		"reviews":       NewReviewRepository(db),
		"rate_limits":   NewRateLimitRepository(db),
		"notifications": NewNotificationRepository(db),
	}
}

// EnsureIndexes creates the indexes of every collection. Run once at
// startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, repo := range indexedRepositories(db) {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
