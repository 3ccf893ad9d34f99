package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisAnswerCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisAnswerCache(rdb), mr
}

func TestRedisAnswerCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)
	_, ok, err := c.Get(context.Background(), "filter-answer:none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected a miss")
	}
}

func TestRedisAnswerCacheRoundTripAndExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", `{"filter_type":"favor recent"}`, time.Minute); err != nil {
		t.Fatal(err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || got != `{"filter_type":"favor recent"}` {
		t.Fatalf("unexpected get: %q %v %v", got, ok, err)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expected entry to expire")
	}
}

func TestRedisAnswerCacheUnavailable(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Error("expected error when redis is down")
	}
}
