// Package budget contains the budget management and analysis use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Amount     decimal.Decimal
	Period     *entity.BudgetPeriod // Optional, defaults to monthly
	CategoryID *string              // Optional, nil = whole-spend budget
	StartDate  *time.Time           // Optional, defaults to today
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	// Apply defaults
	period := entity.BudgetPeriodMonthly
	if input.Period != nil {
		if !isValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly' or 'monthly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		period = *input.Period
	}

	// Validate category exists when the budget is category-scoped
	if input.CategoryID != nil {
		exists, err := uc.categoryRepo.Exists(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeUnknownBudgetCategory,
				"unknown category",
				domainerror.ErrUnknownBudgetCategory,
			)
		}
	}

	// One active budget per scope
	exists, err := uc.budgetRepo.ExistsActiveForCategory(ctx, input.CategoryID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"an active budget already exists for this category",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	startDate := time.Now().UTC()
	if input.StartDate != nil {
		startDate = *input.StartDate
	}
	startDate = startOfDay(startDate)

	b := entity.NewBudget(input.Amount, period, input.CategoryID, startDate)

	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: b,
	}, nil
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	return period == entity.BudgetPeriodWeekly || period == entity.BudgetPeriodMonthly
}
