// Package analytics contains the spending analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// DefaultTrendDays is the trend window used when the caller does not specify one.
const DefaultTrendDays = 30

// MaxTrendDays caps the trend window.
const MaxTrendDays = 365

// GetTrendsInput represents the input for getting daily spending trends.
// When StartDate and EndDate are both set they define the series range and
// Days is ignored.
type GetTrendsInput struct {
	Days      int // Zero value means DefaultTrendDays
	StartDate *time.Time
	EndDate   *time.Time
	Reference time.Time // Zero value means "now"
}

// TrendPoint represents one day in the spending trend series.
type TrendPoint struct {
	Date         time.Time
	TotalAmount  decimal.Decimal
	ExpenseCount int
}

// GetTrendsOutput represents the output of getting daily spending trends.
type GetTrendsOutput struct {
	Interval valueobject.Interval
	Trends   []TrendPoint
}

// GetTrendsUseCase handles building the daily spend series for charts.
type GetTrendsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(expenseRepo adapter.ExpenseRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute computes per-day totals for the requested range, or for the
// trailing window ending at the reference day when no range is given. Days
// without expenses are included with zero values so charts render without
// gaps.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	interval, err := uc.resolveInterval(input)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	return &GetTrendsOutput{
		Interval: interval,
		Trends:   BuildDailySeries(expenses, interval),
	}, nil
}

// resolveInterval turns the input into the series range: an explicit
// start/end pair when given, otherwise a trailing day window ending at the
// reference. Either way the range is capped at MaxTrendDays points.
func (uc *GetTrendsUseCase) resolveInterval(input GetTrendsInput) (valueobject.Interval, error) {
	if input.StartDate != nil || input.EndDate != nil {
		if input.StartDate == nil || input.EndDate == nil {
			return valueobject.Interval{}, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateRange,
				"start_date and end_date must be provided together",
				domainerror.ErrInvalidDateRange,
			)
		}
		if input.EndDate.Before(*input.StartDate) {
			return valueobject.Interval{}, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidDateRange,
				"end_date must not be before start_date",
				domainerror.ErrInvalidDateRange,
			)
		}
		interval := valueobject.NewInterval(startOfDay(*input.StartDate), endOfDay(*input.EndDate))
		if interval.Days() > MaxTrendDays {
			return valueobject.Interval{}, domainerror.NewAnalyticsError(
				domainerror.ErrCodeInvalidTrendDays,
				"range must not exceed 365 days",
				domainerror.ErrInvalidTrendDays,
			)
		}
		return interval, nil
	}

	days := input.Days
	if days == 0 {
		days = DefaultTrendDays
	}
	if days < 1 || days > MaxTrendDays {
		return valueobject.Interval{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidTrendDays,
			"days must be between 1 and 365",
			domainerror.ErrInvalidTrendDays,
		)
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	end := endOfDay(reference)
	start := startOfDay(reference).AddDate(0, 0, -(days - 1))
	return valueobject.NewInterval(start, end), nil
}

// BuildDailySeries buckets expenses by calendar day across the interval,
// producing one point per day with zero-value gaps filled in.
func BuildDailySeries(expenses []*entity.Expense, interval valueobject.Interval) []TrendPoint {
	type bucket struct {
		total decimal.Decimal
		count int
	}

	buckets := make(map[string]*bucket)
	for _, e := range expenses {
		if !e.IsValid() || !interval.Contains(e.Date) {
			continue
		}
		key := dayKey(e.Date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[key] = b
		}
		b.total = b.total.Add(e.Amount)
		b.count++
	}

	trends := make([]TrendPoint, 0, interval.Days())
	for cursor := startOfDay(interval.Start); !cursor.After(interval.End); cursor = cursor.AddDate(0, 0, 1) {
		point := TrendPoint{Date: cursor, TotalAmount: decimal.Zero}
		if b, ok := buckets[dayKey(cursor)]; ok {
			point.TotalAmount = b.total
			point.ExpenseCount = b.count
		}
		trends = append(trends, point)
	}

	return trends
}
