package client

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Embedder turns queries and documents into vectors for the document index.
type Embedder struct {
	client *genai.Client
	model  string // e.g., "text-embedding-004"
}

// NewEmbedderFromClient shares an existing genai client with the completer.
func NewEmbedderFromClient(c *genai.Client, model string) *Embedder {
	return &Embedder{client: c, model: model}
}

func (e *Embedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	res, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini %s: %w", e.model, err)
	}
	if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
		return nil, errors.New("embedding response had no values")
	}
	return res.Embeddings[0].Values, nil
}
