package usecase

import (
	"context"
	"fmt"

	"timefilter-core/internal/domain/entity"
	"timefilter-core/internal/domain/repository"
)

const defaultSearchLimit = 10

// Searcher applies resolved time filters to the document index.
type Searcher struct {
	resolver *Resolver
	embedder repository.Embedder
	index    repository.DocumentIndex
}

func NewSearcher(resolver *Resolver, emb repository.Embedder, index repository.DocumentIndex) *Searcher {
	return &Searcher{resolver: resolver, embedder: emb, index: index}
}

func (s *Searcher) Search(ctx context.Context, req entity.SearchRequest) (*entity.SearchResult, error) {
	filters := s.resolver.Resolve(ctx, req.FilterRequest)

	vector, err := s.embedder.CreateEmbedding(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	hits, err := s.index.Search(ctx, vector, filters, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrIndexUnavailable, err)
	}
	if hits == nil {
		hits = []entity.SearchHit{}
	}
	return &entity.SearchResult{Filters: filters, Hits: hits}, nil
}

// Index embeds and stores a document so later searches can filter on its creation time.
func (s *Searcher) Index(ctx context.Context, doc entity.Document) error {
	vector, err := s.embedder.CreateEmbedding(ctx, doc.Content)
	if err != nil {
		return fmt.Errorf("embedding generation failed: %w", err)
	}
	if err := s.index.Index(ctx, doc, vector); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIndexUnavailable, err)
	}
	return nil
}
