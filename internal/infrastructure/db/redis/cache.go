package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/creatorhub/marketplace-api/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache caches public creator profiles in Redis.
// Key format: creator:<id>
//
// Cache faults are never surfaced: a miss (or a Redis error) just falls
// through to the repository read.
type ProfileCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{client: client, log: log}
}

func (c *ProfileCache) GetCreator(ctx context.Context, id string) (*domain.CreatorProfile, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var profile domain.CreatorProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		c.log.Warn().Err(err).Str("creator_id", id).Msg("corrupt cache entry, dropping")
		_ = c.client.Del(ctx, c.key(id)).Err()
		return nil, false
	}
	return &profile, true
}

func (c *ProfileCache) SetCreator(ctx context.Context, profile *domain.CreatorProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(profile.ID), data, profileTTL).Err(); err != nil {
		c.log.Debug().Err(err).Str("creator_id", profile.ID).Msg("cache write failed")
	}
}

func (c *ProfileCache) InvalidateCreator(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Debug().Err(err).Str("creator_id", id).Msg("cache invalidation failed")
	}
}

func (c *ProfileCache) key(id string) string {
	return "creator:" + id
}
