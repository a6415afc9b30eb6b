// Package expense contains expense-related use case tests.
package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeExpenseStore struct {
	adapter.ExpenseRepository
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (f *fakeExpenseStore) Create(_ context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	return expense, nil
}

func (f *fakeExpenseStore) Update(_ context.Context, expense *entity.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.expenses, id)
	return nil
}

type fakeCategoryCatalog struct {
	adapter.CategoryRepository
	ids map[string]*entity.Category
}

func newFakeCategoryCatalog(ids ...string) *fakeCategoryCatalog {
	catalog := &fakeCategoryCatalog{ids: make(map[string]*entity.Category, len(ids))}
	for i, id := range ids {
		catalog.ids[id] = entity.NewCategory(id, id, "#10B981", "🍽️", "utensils", nil, i)
	}
	return catalog
}

func (f *fakeCategoryCatalog) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.ids[id]
	return ok, nil
}

func (f *fakeCategoryCatalog) FindByID(_ context.Context, id string) (*entity.Category, error) {
	category, ok := f.ids[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

type fakeCategorizer struct {
	suggestion *adapter.CategorySuggestion
	err        error
	calls      int
}

func (f *fakeCategorizer) SuggestCategory(_ context.Context, _, _ string) (*adapter.CategorySuggestion, error) {
	f.calls++
	return f.suggestion, f.err
}

func (f *fakeCategorizer) IsAvailable() bool { return true }

type fakeSuggestionCache struct {
	entries map[string]*adapter.CategorySuggestion
}

func newFakeSuggestionCache() *fakeSuggestionCache {
	return &fakeSuggestionCache{entries: make(map[string]*adapter.CategorySuggestion)}
}

func (f *fakeSuggestionCache) Get(_ context.Context, description string) (*adapter.CategorySuggestion, error) {
	return f.entries[description], nil
}

func (f *fakeSuggestionCache) Set(_ context.Context, description string, suggestion *adapter.CategorySuggestion) error {
	f.entries[description] = suggestion
	return nil
}

func newCreateFixture(categorizer adapter.CategorizationService, cache adapter.SuggestionCache) (*CreateExpenseUseCase, *fakeExpenseStore) {
	store := newFakeExpenseStore()
	uc := NewCreateExpenseUseCase(store, newFakeCategoryCatalog("food", "transport"), categorizer, cache)
	return uc, store
}

func TestCreateExpense_WithExplicitCategory(t *testing.T) {
	uc, store := newCreateFixture(nil, nil)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(250),
		CategoryID:  "food",
		Description: "Lunch",
		Date:        time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC),
		Notes:       "team outing",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.CategoryID != "food" {
		t.Errorf("expected category food, got %s", output.Expense.CategoryID)
	}
	if output.Expense.Category == nil || output.Expense.Category.ID != "food" {
		t.Error("expected resolved category in the output")
	}
	if len(store.expenses) != 1 {
		t.Errorf("expected 1 stored expense, got %d", len(store.expenses))
	}
}

func TestCreateExpense_ValidationErrors(t *testing.T) {
	uc, _ := newCreateFixture(nil, nil)

	tests := []struct {
		name    string
		input   CreateExpenseInput
		wantErr error
	}{
		{
			name: "empty description",
			input: CreateExpenseInput{
				Amount:      decimal.NewFromInt(10),
				Description: "   ",
			},
			wantErr: domainerror.ErrMissingExpenseDescription,
		},
		{
			name: "zero amount",
			input: CreateExpenseInput{
				Amount:      decimal.Zero,
				Description: "Lunch",
			},
			wantErr: domainerror.ErrInvalidExpenseAmount,
		},
		{
			name: "negative amount",
			input: CreateExpenseInput{
				Amount:      decimal.NewFromInt(-5),
				Description: "Lunch",
			},
			wantErr: domainerror.ErrInvalidExpenseAmount,
		},
		{
			name: "unknown category",
			input: CreateExpenseInput{
				Amount:      decimal.NewFromInt(10),
				CategoryID:  "yachts",
				Description: "Lunch",
			},
			wantErr: domainerror.ErrUnknownExpenseCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateExpense_DefaultsDateToNow(t *testing.T) {
	uc, store := newCreateFixture(nil, nil)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(99),
		CategoryID:  "food",
		Description: "Dinner",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.Date.IsZero() {
		t.Error("expected the date to default to the current instant")
	}
	if stored := store.expenses[output.Expense.ID]; stored == nil || stored.Date.IsZero() {
		t.Error("expected the stored expense to carry the defaulted date")
	}
}

func TestCreateExpense_AutoCategorizes(t *testing.T) {
	categorizer := &fakeCategorizer{
		suggestion: &adapter.CategorySuggestion{
			CategoryID: "food",
			Confidence: 0.9,
			Source:     adapter.SuggestionSourceAI,
		},
	}
	cache := newFakeSuggestionCache()
	uc, _ := newCreateFixture(categorizer, cache)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(180),
		Description: "Pizza palace",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.CategoryID != "food" {
		t.Errorf("expected suggested category food, got %q", output.Expense.CategoryID)
	}
	if categorizer.calls != 1 {
		t.Errorf("expected 1 categorizer call, got %d", categorizer.calls)
	}
	if cached := cache.entries["Pizza palace"]; cached == nil || cached.CategoryID != "food" {
		t.Error("expected the suggestion to be cached")
	}
}

func TestCreateExpense_LowConfidenceStaysUncategorized(t *testing.T) {
	categorizer := &fakeCategorizer{
		suggestion: &adapter.CategorySuggestion{
			CategoryID: "food",
			Confidence: 0.3,
			Source:     adapter.SuggestionSourceAI,
		},
	}
	uc, _ := newCreateFixture(categorizer, newFakeSuggestionCache())

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(75),
		Description: "Mystery charge",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.CategoryID != "" {
		t.Errorf("expected uncategorized expense, got %q", output.Expense.CategoryID)
	}
}

func TestCreateExpense_CacheHitSkipsTheModel(t *testing.T) {
	categorizer := &fakeCategorizer{}
	cache := newFakeSuggestionCache()
	cache.entries["Metro card"] = &adapter.CategorySuggestion{
		CategoryID: "transport",
		Confidence: 0.8,
		Source:     adapter.SuggestionSourceAI,
	}
	uc, _ := newCreateFixture(categorizer, cache)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(500),
		Description: "Metro card",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Expense.CategoryID != "transport" {
		t.Errorf("expected cached category transport, got %q", output.Expense.CategoryID)
	}
	if categorizer.calls != 0 {
		t.Errorf("expected the cache hit to skip the categorizer, got %d calls", categorizer.calls)
	}
}

func TestCreateExpense_CategorizerFailureIsNotFatal(t *testing.T) {
	categorizer := &fakeCategorizer{err: errors.New("model unavailable")}
	uc, store := newCreateFixture(categorizer, nil)

	output, err := uc.Execute(context.Background(), CreateExpenseInput{
		Amount:      decimal.NewFromInt(60),
		Description: "Chai",
	})
	if err != nil {
		t.Fatalf("expected the creation to survive a categorizer failure, got %v", err)
	}

	if output.Expense.CategoryID != "" {
		t.Errorf("expected uncategorized expense, got %q", output.Expense.CategoryID)
	}
	if len(store.expenses) != 1 {
		t.Errorf("expected 1 stored expense, got %d", len(store.expenses))
	}
}
