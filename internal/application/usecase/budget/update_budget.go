// Package budget contains the budget management and analysis use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	BudgetID      uuid.UUID
	Amount        *decimal.Decimal     // Optional
	Period        *entity.BudgetPeriod // Optional
	CategoryID    *string              // Optional, new category scope
	ClearCategory bool                 // Convert to a whole-spend budget
	StartDate     *time.Time           // Optional
	IsActive      *bool                // Optional
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, categoryRepo adapter.CategoryRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	b, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	// Update amount if provided
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"budget amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		b.Amount = *input.Amount
	}

	// Update period if provided
	if input.Period != nil {
		if !isValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly' or 'monthly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		b.Period = *input.Period
	}

	// Update category scope if provided
	newCategory := b.CategoryID
	if input.ClearCategory {
		newCategory = nil
	} else if input.CategoryID != nil {
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
		newCategory = input.CategoryID
	}

	if input.StartDate != nil {
		b.StartDate = startOfDay(*input.StartDate)
	}

	active := b.IsActive
	if input.IsActive != nil {
		active = *input.IsActive
	}

	// Scope changes and re-activations must not collide with another active budget
	scopeChanged := !sameScope(b.CategoryID, newCategory)
	reactivating := active && !b.IsActive
	if active && (scopeChanged || reactivating) {
		exists, err := uc.budgetRepo.ExistsActiveForCategory(ctx, newCategory, &b.ID)
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
	}

	b.CategoryID = newCategory
	b.IsActive = active
	b.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: b,
	}, nil
}

func sameScope(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
