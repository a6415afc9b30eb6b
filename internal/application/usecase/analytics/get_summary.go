// Package analytics contains the spending analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for getting a spending summary.
// When StartDate and EndDate are both set they define a custom interval
// and Period is ignored.
type GetSummaryInput struct {
	Period    Period
	StartDate *time.Time
	EndDate   *time.Time
	Reference time.Time // Zero value means "now"
}

// GetSummaryOutput represents the output of getting a spending summary.
type GetSummaryOutput struct {
	Period  Period
	Summary *valueobject.SpendingSummary
}

// GetSummaryUseCase handles computing period spending summaries.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute resolves the requested window and summarizes the expense snapshot
// over it.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	interval, period, err := uc.resolveInterval(input)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.ListAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	return &GetSummaryOutput{
		Period:  period,
		Summary: BuildSummary(expenses, interval),
	}, nil
}

// resolveInterval turns the input into a concrete interval: a custom
// start/end pair when given, otherwise the symbolic period resolved against
// the reference instant.
func (uc *GetSummaryUseCase) resolveInterval(input GetSummaryInput) (valueobject.Interval, Period, error) {
	if input.StartDate != nil || input.EndDate != nil {
		if input.StartDate == nil || input.EndDate == nil {
			return valueobject.Interval{}, "", domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateRange,
				"start_date and end_date must be provided together",
				domainerror.ErrInvalidDateRange,
			)
		}
		if input.EndDate.Before(*input.StartDate) {
			return valueobject.Interval{}, "", domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateRange,
				"end_date must not be before start_date",
				domainerror.ErrInvalidDateRange,
			)
		}
		interval := valueobject.NewInterval(startOfDay(*input.StartDate), endOfDay(*input.EndDate))
		return interval, PeriodCustom, nil
	}

	if !input.Period.IsValid() {
		return valueobject.Interval{}, "", domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: today, week, or month",
			domainerror.ErrInvalidPeriod,
		)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	return ResolvePeriod(input.Period, reference), input.Period, nil
}
