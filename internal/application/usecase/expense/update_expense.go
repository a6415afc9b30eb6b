// Package expense contains expense-related use cases.
package expense

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

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	Amount        *decimal.Decimal
	CategoryID    *string
	ClearCategory bool // Set to true to make the expense uncategorized
	Description   *string
	Date          *time.Time
	Notes         *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must be positive",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseDescriptionTooLong,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				domainerror.ErrExpenseDescriptionTooLong,
			)
		}
		expense.Description = *input.Description
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"date must be a valid instant",
				domainerror.ErrInvalidExpenseDate,
			)
		}
		expense.Date = *input.Date
	}

	if input.ClearCategory {
		expense.CategoryID = ""
	} else if input.CategoryID != nil && *input.CategoryID != "" {
		exists, err := uc.categoryRepo.Exists(ctx, *input.CategoryID)
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
		expense.CategoryID = *input.CategoryID
	}

	if input.Notes != nil {
		if len(*input.Notes) > MaxNotesLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotesTooLong,
				fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
				domainerror.ErrExpenseNotesTooLong,
			)
		}
		expense.Notes = *input.Notes
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	var category *entity.Category
	if expense.CategoryID != "" {
		if cat, err := uc.categoryRepo.FindByID(ctx, expense.CategoryID); err == nil {
			category = cat
		}
	}

	return &UpdateExpenseOutput{
		Expense: newExpenseOutput(expense, category),
	}, nil
}
