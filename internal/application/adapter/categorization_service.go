// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SuggestionSource identifies which mechanism produced a category suggestion.
type SuggestionSource string

const (
	SuggestionSourceAI      SuggestionSource = "ai"
	SuggestionSourceKeyword SuggestionSource = "keyword"
)

// CategorySuggestion represents a categorization result for one expense.
// CategoryID is a catalog slug; Confidence is 0-1.
type CategorySuggestion struct {
	CategoryID string
	Confidence float64
	Source     SuggestionSource
}

// CategorizationService resolves a category for a new expense before it
// reaches the analytics engine. Implementations may call an AI model with a
// keyword-rule fallback; the engine trusts whatever id comes back.
type CategorizationService interface {
	// SuggestCategory suggests a catalog category for an expense description.
	// Amount is passed as a formatted string for model context only.
	SuggestCategory(ctx context.Context, description, amount string) (*CategorySuggestion, error)

	// IsAvailable checks if the AI backend is configured. The keyword
	// fallback works either way.
	IsAvailable() bool
}

// SuggestionCache caches suggestions by normalized description so repeated
// expense names skip the model call. A nil lookup result means a miss.
type SuggestionCache interface {
	// Get returns the cached suggestion for a description, or nil on miss.
	Get(ctx context.Context, description string) (*CategorySuggestion, error)

	// Set stores a suggestion for a description.
	Set(ctx context.Context, description string, suggestion *CategorySuggestion) error
}
