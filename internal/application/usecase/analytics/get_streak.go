// Package analytics contains the spending analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
)

// GetStreakInput represents the input for getting the activity streak.
type GetStreakInput struct {
	Reference time.Time // Zero value means "now"
}

// GetStreakOutput represents the output of getting the activity streak.
type GetStreakOutput struct {
	CurrentStreak int
	ActiveToday   bool
}

// GetStreakUseCase handles computing the consecutive-day tracking streak.
type GetStreakUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetStreakUseCase creates a new GetStreakUseCase instance.
func NewGetStreakUseCase(expenseRepo adapter.ExpenseRepository) *GetStreakUseCase {
	return &GetStreakUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute computes the streak from the full expense snapshot.
func (uc *GetStreakUseCase) Execute(ctx context.Context, input GetStreakInput) (*GetStreakOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	streak := CurrentStreak(expenses, reference)

	return &GetStreakOutput{
		CurrentStreak: streak,
		ActiveToday:   streak > 0,
	}, nil
}
