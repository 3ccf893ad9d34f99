package entity

import "time"

type SearchRequest struct {
	FilterRequest
	Limit uint64 `json:"limit" validate:"omitempty,min=1,max=100"`
}

// Document is a unit stored in the index. CreatedAt drives the hard cutoff.
type Document struct {
	ID        string            `json:"id"`
	Content   string            `json:"content" validate:"required"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type SearchHit struct {
	Document
	Score float32 `json:"score"`
}

type SearchResult struct {
	Filters TimeFilterDecision `json:"filters"`
	Hits    []SearchHit        `json:"hits"`
}
