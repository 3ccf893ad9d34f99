package entity

import "errors"

// Standard domain errors
var (
	ErrModelUnavailable = errors.New("filter model unavailable")
	ErrEmptyCompletion  = errors.New("filter model returned an empty completion")
	ErrInvalidRequest   = errors.New("invalid request parameters")
	ErrIndexUnavailable = errors.New("document index unavailable")
)
