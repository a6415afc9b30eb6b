// Package category contains category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	StartDate *time.Time // Optional start date for usage statistics
	EndDate   *time.Time // Optional end date for usage statistics
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID           string
	Name         string
	Color        string
	Emoji        string
	Icon         string
	SortOrder    int
	ExpenseCount int
	PeriodTotal  float64
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing the category catalog, optionally
// decorated with usage statistics over a date window.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}
	for i, cat := range categories {
		output.Categories[i] = &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Color:     cat.Color,
			Emoji:     cat.Emoji,
			Icon:      cat.Icon,
			SortOrder: cat.SortOrder,
		}
	}

	// Usage statistics are decoration; failures degrade to a bare catalog
	// rather than failing the listing.
	if input.StartDate != nil && input.EndDate != nil {
		uc.attachStats(ctx, output, *input.StartDate, *input.EndDate)
	}

	return output, nil
}

func (uc *ListCategoriesUseCase) attachStats(ctx context.Context, output *ListCategoriesOutput, start, end time.Time) {
	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return
	}

	counts := make(map[string]int)
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !e.IsValid() || e.CategoryID == "" {
			continue
		}
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		counts[e.CategoryID]++
		totals[e.CategoryID] = totals[e.CategoryID].Add(e.Amount)
	}

	for _, cat := range output.Categories {
		cat.ExpenseCount = counts[cat.ID]
		total, _ := totals[cat.ID].Round(2).Float64()
		cat.PeriodTotal = total
	}
}
