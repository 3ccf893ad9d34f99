package entity

import "time"

// TimeFilterDecision is the resolved time filter for a single query.
// Cutoff, when set, is always UTC.
type TimeFilterDecision struct {
	Cutoff      *time.Time `json:"time_cutoff"`
	FavorRecent bool       `json:"favor_recent"`
}

// FilterRequest is the caller's view of a query and the filters it already chose.
// A nil pointer means "not provided"; an explicit false for FavorRecent is kept.
type FilterRequest struct {
	Query               string     `json:"query" validate:"required,max=4000"`
	ExplicitCutoff      *time.Time `json:"time_cutoff"`
	ExplicitFavorRecent *bool      `json:"favor_recent"`
	AutoDetectEnabled   bool       `json:"enable_auto_detect_filters"`
}

// ModelFilterAnswer is the loosely typed JSON object the filter model answers with.
// Any subset of filter_type, filter_value, value_multiple and date may be present.
type ModelFilterAnswer map[string]any

// Roles understood by a TextCompletionProvider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PromptTurn is one role-tagged message sent to the filter model.
type PromptTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
