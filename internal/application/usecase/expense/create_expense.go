// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for expense notes.
	MaxNotesLength = 1000
	// MinSuggestionConfidence is the floor below which an automatic category
	// suggestion is discarded and the expense stays uncategorized.
	MinSuggestionConfidence = 0.5
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	CategoryID  string // Empty triggers automatic categorization
	Description string
	Date        time.Time // Zero value means the current instant
	Notes       string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo           adapter.ExpenseRepository
	categoryRepo          adapter.CategoryRepository
	categorizationService adapter.CategorizationService
	suggestionCache       adapter.SuggestionCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	categorizationService adapter.CategorizationService,
	suggestionCache adapter.SuggestionCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:           expenseRepo,
		categoryRepo:          categoryRepo,
		categorizationService: categorizationService,
		suggestionCache:       suggestionCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseDescription,
			"description is required",
			domainerror.ErrMissingExpenseDescription,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}
	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrExpenseNotesTooLong,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	categoryID := input.CategoryID
	if categoryID != "" {
		exists, err := uc.categoryRepo.Exists(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeUnknownExpenseCategory,
				"category not found in the catalog",
				domainerror.ErrUnknownExpenseCategory,
			)
		}
	} else {
		categoryID = uc.suggestCategory(ctx, input.Description, input.Amount)
	}

	expense := entity.NewExpense(input.Amount, categoryID, input.Description, date, input.Notes)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	var category *entity.Category
	if expense.CategoryID != "" {
		if cat, err := uc.categoryRepo.FindByID(ctx, expense.CategoryID); err == nil {
			category = cat
		}
	}

	return &CreateExpenseOutput{
		Expense: newExpenseOutput(expense, category),
	}, nil
}

// suggestCategory resolves a category for an uncategorized expense through
// the suggestion cache and the categorization service. It never fails the
// creation; on any error the expense simply stays uncategorized.
func (uc *CreateExpenseUseCase) suggestCategory(ctx context.Context, description string, amount decimal.Decimal) string {
	if uc.suggestionCache != nil {
		cached, err := uc.suggestionCache.Get(ctx, description)
		if err != nil {
			slog.Debug("Failed to read suggestion cache",
				"description", description,
				"error", err,
			)
		} else if cached != nil {
			return acceptSuggestion(cached)
		}
	}

	if uc.categorizationService == nil {
		return ""
	}

	suggestion, err := uc.categorizationService.SuggestCategory(ctx, description, amount.StringFixed(2))
	if err != nil || suggestion == nil {
		slog.Debug("Failed to auto-categorize expense",
			"description", description,
			"error", err,
		)
		return ""
	}

	if uc.suggestionCache != nil {
		if err := uc.suggestionCache.Set(ctx, description, suggestion); err != nil {
			slog.Debug("Failed to cache category suggestion",
				"description", description,
				"error", err,
			)
		}
	}

	return acceptSuggestion(suggestion)
}

// acceptSuggestion returns the suggested category id when the confidence
// clears the floor, or empty to leave the expense uncategorized.
func acceptSuggestion(suggestion *adapter.CategorySuggestion) string {
	if suggestion.Confidence < MinSuggestionConfidence {
		return ""
	}
	return suggestion.CategoryID
}
