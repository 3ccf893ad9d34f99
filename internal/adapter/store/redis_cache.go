package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAnswerCache keeps raw filter-model answers for a short while.
type RedisAnswerCache struct {
	client *redis.Client
}

func NewRedisAnswerCache(client *redis.Client) *RedisAnswerCache {
	return &RedisAnswerCache{client: client}
}

func (r *RedisAnswerCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisAnswerCache) Set(ctx context.Context, key, answer string, ttl time.Duration) error {
	return r.client.Set(ctx, key, answer, ttl).Err()
}
