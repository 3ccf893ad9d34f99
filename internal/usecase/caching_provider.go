package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/domain/repository"
	"timefilter-core/internal/logger"
)

// CachingProvider remembers raw model answers per prompt. Only the text is cached;
// relative cutoffs are still computed against the clock on every call.
type CachingProvider struct {
	next  repository.TextCompletionProvider
	cache repository.AnswerCache
	ttl   time.Duration
}

func NewCachingProvider(next repository.TextCompletionProvider, cache repository.AnswerCache, ttl time.Duration) *CachingProvider {
	return &CachingProvider{next: next, cache: cache, ttl: ttl}
}

func (c *CachingProvider) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	key := promptKey(turns)

	if out, ok, err := c.cache.Get(ctx, key); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("answer cache lookup failed")
	} else if ok {
		return out, nil
	}

	out, err := c.next.Complete(ctx, turns)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, out, c.ttl); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("answer cache write failed")
	}
	return out, nil
}

func promptKey(turns []entity.PromptTurn) string {
	buf, _ := json.Marshal(turns)
	sum := sha256.Sum256(buf)
	return "filter-answer:" + hex.EncodeToString(sum[:])
}
