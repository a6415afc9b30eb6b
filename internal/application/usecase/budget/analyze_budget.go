// Package budget contains the budget management and analysis use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// AnalyzeBudgetInput represents the input for analyzing one budget cycle.
type AnalyzeBudgetInput struct {
	BudgetID  uuid.UUID
	Cycle     valueobject.CycleSelection // Empty means current
	Reference time.Time                  // Zero value means "now"
}

// AnalyzeBudgetOutput represents the output of analyzing one budget cycle.
type AnalyzeBudgetOutput struct {
	Analysis *valueobject.BudgetAnalysis
	Insights []valueobject.BudgetInsight
}

// AnalyzeBudgetUseCase handles the budget-vs-actual analysis of a single budget.
type AnalyzeBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewAnalyzeBudgetUseCase creates a new AnalyzeBudgetUseCase instance.
func NewAnalyzeBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *AnalyzeBudgetUseCase {
	return &AnalyzeBudgetUseCase{
		budgetRepo:   budgetRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute loads one expense snapshot and analyzes the requested cycle of the
// budget against it.
func (uc *AnalyzeBudgetUseCase) Execute(ctx context.Context, input AnalyzeBudgetInput) (*AnalyzeBudgetOutput, error) {
	selection := input.Cycle
	if selection == "" {
		selection = valueobject.CycleCurrent
	}
	if selection != valueobject.CycleCurrent && selection != valueobject.CyclePrevious {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidCycleSelection,
			"cycle must be current or previous",
			domainerror.ErrInvalidCycleSelection,
		)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

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

	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	analysis := Analyze(b, expenses, reference, selection)

	if b.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *b.CategoryID)
		if err == nil {
			analysis.Category = category
		}
	}

	return &AnalyzeBudgetOutput{
		Analysis: analysis,
		Insights: BuildInsights(analysis),
	}, nil
}
