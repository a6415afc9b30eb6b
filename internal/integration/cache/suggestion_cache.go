// Package cache provides Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

// DefaultSuggestionTTL is how long a category suggestion stays cached.
// Suggestions for the same description rarely change, so the TTL is long.
const DefaultSuggestionTTL = 30 * 24 * time.Hour

const suggestionKeyPrefix = "spendwise:suggestion:"

// cachedSuggestion is the JSON payload stored in Redis.
type cachedSuggestion struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// suggestionCache implements the adapter.SuggestionCache interface on Redis.
type suggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSuggestionCache creates a new suggestion cache instance. A nil client
// disables caching; every lookup misses and writes are dropped.
func NewSuggestionCache(client *redis.Client, ttl time.Duration) adapter.SuggestionCache {
	if ttl <= 0 {
		ttl = DefaultSuggestionTTL
	}
	return &suggestionCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached suggestion for a description, or nil on miss.
func (c *suggestionCache) Get(ctx context.Context, description string) (*adapter.CategorySuggestion, error) {
	if c.client == nil {
		return nil, nil
	}

	payload, err := c.client.Get(ctx, suggestionKey(description)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedSuggestion
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		// A corrupt entry is treated as a miss so the caller re-resolves.
		return nil, nil
	}

	return &adapter.CategorySuggestion{
		CategoryID: cached.CategoryID,
		Confidence: cached.Confidence,
		Source:     adapter.SuggestionSource(cached.Source),
	}, nil
}

// Set stores a suggestion for a description.
func (c *suggestionCache) Set(ctx context.Context, description string, suggestion *adapter.CategorySuggestion) error {
	if c.client == nil || suggestion == nil {
		return nil
	}

	payload, err := json.Marshal(cachedSuggestion{
		CategoryID: suggestion.CategoryID,
		Confidence: suggestion.Confidence,
		Source:     string(suggestion.Source),
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, suggestionKey(description), payload, c.ttl).Err()
}

// suggestionKey normalizes a description into a cache key. Case and
// surrounding whitespace do not change the suggestion.
func suggestionKey(description string) string {
	return suggestionKeyPrefix + strings.ToLower(strings.TrimSpace(description))
}
