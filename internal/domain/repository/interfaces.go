package repository

import (
	"context"
	"time"

	"timefilter-core/internal/domain/entity"
)

// TextCompletionProvider turns an ordered list of prompt turns into raw model text.
type TextCompletionProvider interface {
	Complete(ctx context.Context, turns []entity.PromptTurn) (string, error)
}

// AnswerCache stores raw model answers keyed by prompt fingerprint.
type AnswerCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, answer string, ttl time.Duration) error
}

type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// DocumentIndex is the downstream store that consumes a resolved time filter.
type DocumentIndex interface {
	Search(ctx context.Context, vector []float32, filters entity.TimeFilterDecision, limit uint64) ([]entity.SearchHit, error)
	Index(ctx context.Context, doc entity.Document, vector []float32) error
}
