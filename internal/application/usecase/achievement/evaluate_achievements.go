// Package achievement contains the gamification engine: the static definition
// catalog, the progress rules, and the use cases that evaluate and persist
// achievement state.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// EvaluateAchievementsInput contains the input for evaluating achievements.
type EvaluateAchievementsInput struct {
	Reference time.Time // zero value means the current instant
}

// EvaluateAchievementsOutput contains the full evaluated catalog and the
// achievements that unlocked during this evaluation.
type EvaluateAchievementsOutput struct {
	Achievements  []entity.Achievement
	NewlyUnlocked []entity.Achievement
}

// EvaluateAchievementsUseCase recomputes achievement progress from the
// current expense and budget snapshot and persists the merged state. Progress
// is derived on every call; only the unlock flag and timestamp are state that
// genuinely lives in the store.
type EvaluateAchievementsUseCase struct {
	achievementRepo adapter.AchievementRepository
	expenseRepo     adapter.ExpenseRepository
	budgetRepo      adapter.BudgetRepository
}

// NewEvaluateAchievementsUseCase creates a new EvaluateAchievementsUseCase.
func NewEvaluateAchievementsUseCase(
	achievementRepo adapter.AchievementRepository,
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
) *EvaluateAchievementsUseCase {
	return &EvaluateAchievementsUseCase{
		achievementRepo: achievementRepo,
		expenseRepo:     expenseRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute evaluates the full catalog against one consistent snapshot.
func (uc *EvaluateAchievementsUseCase) Execute(ctx context.Context, input EvaluateAchievementsInput) (*EvaluateAchievementsOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	states, err := uc.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement states: %w", err)
	}

	prior := make(map[string]*entity.AchievementState, len(states))
	for _, state := range states {
		if state != nil {
			prior[state.DefinitionID] = state
		}
	}

	achievements, newlyUnlocked := Evaluate(Definitions(), expenses, budgets, prior, reference)

	updated := make([]*entity.AchievementState, 0, len(achievements))
	for _, a := range achievements {
		updated = append(updated, &entity.AchievementState{
			DefinitionID: a.Definition.ID,
			Progress:     a.Progress,
			IsUnlocked:   a.IsUnlocked,
			UnlockedAt:   a.UnlockedAt,
			UpdatedAt:    reference,
		})
	}
	if err := uc.achievementRepo.SaveAll(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save achievement states: %w", err)
	}

	return &EvaluateAchievementsOutput{
		Achievements:  achievements,
		NewlyUnlocked: newlyUnlocked,
	}, nil
}
