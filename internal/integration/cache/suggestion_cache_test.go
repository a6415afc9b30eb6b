package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (adapter.SuggestionCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSuggestionCache(client, time.Hour), server
}

func TestSuggestionCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	suggestion := &adapter.CategorySuggestion{
		CategoryID: "food",
		Confidence: 0.92,
		Source:     adapter.SuggestionSourceAI,
	}

	if err := cache.Set(ctx, "Starbucks coffee", suggestion); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "Starbucks coffee")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached suggestion, got nil")
	}
	if got.CategoryID != "food" {
		t.Errorf("expected category id food, got %s", got.CategoryID)
	}
	if got.Confidence != 0.92 {
		t.Errorf("expected confidence 0.92, got %v", got.Confidence)
	}
	if got.Source != adapter.SuggestionSourceAI {
		t.Errorf("expected source ai, got %s", got.Source)
	}
}

func TestSuggestionCache_NormalizesDescription(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	suggestion := &adapter.CategorySuggestion{
		CategoryID: "transport",
		Confidence: 0.8,
		Source:     adapter.SuggestionSourceKeyword,
	}

	if err := cache.Set(ctx, "  Uber Ride  ", suggestion); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, "uber ride")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected hit for case-insensitive lookup, got miss")
	}
	if got.CategoryID != "transport" {
		t.Errorf("expected category id transport, got %s", got.CategoryID)
	}
}

func TestSuggestionCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "never seen before")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %+v", got)
	}
}

func TestSuggestionCache_ExpiredEntryMisses(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	suggestion := &adapter.CategorySuggestion{
		CategoryID: "food",
		Confidence: 0.9,
		Source:     adapter.SuggestionSourceAI,
	}
	if err := cache.Set(ctx, "lunch", suggestion); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	server.FastForward(2 * time.Hour)

	got, err := cache.Get(ctx, "lunch")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired entry to miss, got %+v", got)
	}
}

func TestSuggestionCache_CorruptEntryMisses(t *testing.T) {
	cache, server := newTestCache(t)

	if err := server.Set(suggestionKey("broken"), "not json"); err != nil {
		t.Fatalf("failed to seed corrupt entry: %v", err)
	}

	got, err := cache.Get(context.Background(), "broken")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected corrupt entry to read as miss, got %+v", got)
	}
}

func TestSuggestionCache_NilClientDisablesCaching(t *testing.T) {
	cache := NewSuggestionCache(nil, time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "anything", &adapter.CategorySuggestion{CategoryID: "food"}); err != nil {
		t.Fatalf("Set with nil client returned error: %v", err)
	}

	got, err := cache.Get(ctx, "anything")
	if err != nil {
		t.Fatalf("Get with nil client returned error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil client to always miss, got %+v", got)
	}
}
