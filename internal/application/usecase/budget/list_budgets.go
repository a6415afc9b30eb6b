// Package budget contains the budget management and analysis use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	IncludeInactive bool
	Reference       time.Time // Zero value means "now"
}

// BudgetItem represents a single budget in the list output, with its
// current-cycle analysis attached.
type BudgetItem struct {
	Budget   *entity.Budget
	Category *entity.Category // nil for whole-spend budgets
	Analysis *valueobject.BudgetAnalysis
	Insights []valueobject.BudgetInsight
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetItem
}

// ListBudgetsUseCase handles listing budgets with their analyses.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists budgets and analyzes each current cycle against a single
// expense snapshot, so all analyses in one response reflect the same point
// in time.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	var budgets []*entity.Budget
	var err error
	if input.IncludeInactive {
		budgets, err = uc.budgetRepo.ListAll(ctx)
	} else {
		budgets, err = uc.budgetRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetItem, 0, len(budgets)),
	}

	for _, b := range budgets {
		analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

		var category *entity.Category
		if b.CategoryID != nil {
			category, err = uc.categoryRepo.FindByID(ctx, *b.CategoryID)
			if err != nil {
				// Unknown catalog id, present the budget without a category
				category = nil
			}
			analysis.Category = category
		}

		output.Budgets = append(output.Budgets, &BudgetItem{
			Budget:   b,
			Category: category,
			Analysis: analysis,
			Insights: BuildInsights(analysis),
		})
	}

	return output, nil
}
