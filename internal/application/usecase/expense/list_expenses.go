// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID string
	Search     string
	Page       int
	Limit      int
}

// ExpenseOutput represents a single expense in the output.
type ExpenseOutput struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	CategoryID  string
	Category    *CategoryOutput
	Description string
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput represents category information in expense output.
type CategoryOutput struct {
	ID    string
	Name  string
	Color string
	Emoji string
	Icon  string
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses   []*ExpenseOutput
	Pagination PaginationOutput
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.ExpenseFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		Search:     input.Search,
	}
	pagination := adapter.ExpensePagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(result.Expenses)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for i, withCategory := range result.Expenses {
		output.Expenses[i] = newExpenseOutput(withCategory.Expense, withCategory.Category)
	}

	return output, nil
}

// newExpenseOutput builds the output view of one expense with its resolved
// category, if any.
func newExpenseOutput(e *entity.Expense, category *entity.Category) *ExpenseOutput {
	out := &ExpenseOutput{
		ID:          e.ID,
		Amount:      e.Amount,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Date:        e.Date,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if category != nil {
		out.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Emoji: category.Emoji,
			Icon:  category.Icon,
		}
	}
	return out
}
