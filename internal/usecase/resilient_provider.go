package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/domain/repository"
	"timefilter-core/internal/logger"
)

// ResilientProvider retries the primary filter model, then tries the fallback once.
// Every call is capped by timeout so a slow model can't hold up the query.
type ResilientProvider struct {
	primary    repository.TextCompletionProvider
	fallback   repository.TextCompletionProvider // optional, usually a smaller model
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
}

func NewResilientProvider(primary, fallback repository.TextCompletionProvider, timeout time.Duration) *ResilientProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ResilientProvider{
		primary:    primary,
		fallback:   fallback,
		maxRetries: 2, // 3 attempts on the primary
		baseDelay:  250 * time.Millisecond,
		timeout:    timeout,
	}
}

func (r *ResilientProvider) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	resCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.executeWithRetry(resCtx, r.primary, turns)
	if err == nil {
		return out, nil
	}
	if r.fallback == nil || resCtx.Err() != nil {
		return "", err
	}

	logger.C(ctx).Warn().Err(err).Msg("primary filter model exhausted, switching to fallback")

	out, ferr := r.fallback.Complete(resCtx, turns)
	if ferr != nil {
		return "", fmt.Errorf("both primary and fallback failed: %w", errors.Join(err, ferr))
	}
	return out, nil
}

func (r *ResilientProvider) executeWithRetry(ctx context.Context, p repository.TextCompletionProvider, turns []entity.PromptTurn) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		out, err := p.Complete(ctx, turns)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == r.maxRetries {
			break
		}

		wait := r.backoff(attempt)
		logger.C(ctx).Debug().Err(err).Int("attempt", attempt+1).Dur("wait", wait).Msg("retrying filter model")
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

// isRetryable matches rate limits, server errors and empty answers.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, entity.ErrEmptyCompletion) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "unavailable")
}

func (r *ResilientProvider) backoff(attempt int) time.Duration {
	backoff := float64(r.baseDelay) * float64(int(1)<<attempt)
	jitter := (rand.Float64() * 0.2) * backoff
	return time.Duration(backoff + jitter)
}
