package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/medlink-api/internal/domain/entity"
	"github.com/oksasatya/medlink-api/internal/domain/repository"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

// ProfileCache stores dashboard projections in Redis as JSON.
type ProfileCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ repository.ProfileCache = (*ProfileCache)(nil)

func NewProfileCache(rdb redis.Cmdable, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

func ProfileKey(userID string) string {
	return "profile:" + userID
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*entity.Profile, bool, error) {
	var p entity.Profile
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, ProfileKey(userID), &p)
	if err != nil || !ok {
		return nil, false, err
	}
	return &p, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, p entity.Profile) error {
	return helpers.RedisSetJSON(ctx, c.rdb, ProfileKey(p.ID), p, c.ttl)
}

func (c *ProfileCache) Delete(ctx context.Context, userID string) error {
	return helpers.RedisDel(ctx, c.rdb, ProfileKey(userID))
}
