package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client with short timeouts; the cache sits on the
// request path and must fail fast.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   1,
	})
}

func RedisSetJSON(ctx context.Context, rdb redis.Cmdable, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// RedisGetJSON reports false with a nil error on a cache miss. An entry that
// no longer decodes into dest is evicted and treated as a miss.
func RedisGetJSON[T any](ctx context.Context, rdb redis.Cmdable, key string, dest *T) (bool, error) {
	res, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res, dest); err != nil {
		var zero T
		*dest = zero
		return false, RedisDel(ctx, rdb, key)
	}
	return true, nil
}

func RedisDel(ctx context.Context, rdb redis.Cmdable, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
