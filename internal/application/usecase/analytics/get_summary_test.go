package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeExpenseSource backs the analytics use cases with a fixed snapshot.
type fakeExpenseSource struct {
	adapter.ExpenseRepository
	expenses []*entity.ExpenseWithCategory
}

func (f *fakeExpenseSource) ListAllWithCategory(_ context.Context) ([]*entity.ExpenseWithCategory, error) {
	return f.expenses, nil
}

func (f *fakeExpenseSource) ListAll(_ context.Context) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0, len(f.expenses))
	for _, item := range f.expenses {
		out = append(out, item.Expense)
	}
	return out, nil
}

func dateAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestGetSummary_SymbolicPeriod(t *testing.T) {
	repo := &fakeExpenseSource{expenses: []*entity.ExpenseWithCategory{
		expenseOn(100, "food", dateAt(2024, 3, 5)),
		expenseOn(50, "transport", dateAt(2024, 3, 20)),
		expenseOn(999, "food", dateAt(2024, 2, 28)), // outside march
	}}
	uc := NewGetSummaryUseCase(repo)

	output, err := uc.Execute(context.Background(), GetSummaryInput{
		Period:    PeriodMonth,
		Reference: dateAt(2024, 3, 15),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Period != PeriodMonth {
		t.Errorf("expected period month, got %s", output.Period)
	}
	if !output.Summary.TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected total 150, got %s", output.Summary.TotalAmount)
	}
	if output.Summary.ExpenseCount != 2 {
		t.Errorf("expected 2 expenses, got %d", output.Summary.ExpenseCount)
	}
}

func TestGetSummary_CustomRange(t *testing.T) {
	repo := &fakeExpenseSource{expenses: []*entity.ExpenseWithCategory{
		expenseOn(100, "food", dateAt(2024, 3, 5)),
		expenseOn(40, "food", dateAt(2024, 3, 10)),
		expenseOn(60, "food", dateAt(2024, 3, 11)), // one day past the range
	}}
	uc := NewGetSummaryUseCase(repo)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), GetSummaryInput{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.Period != PeriodCustom {
		t.Errorf("expected custom period label, got %s", output.Period)
	}
	if !output.Summary.TotalAmount.Equal(decimal.NewFromInt(140)) {
		t.Errorf("expected total 140, got %s", output.Summary.TotalAmount)
	}
	// The range end is extended to the whole civil day.
	if output.Summary.Interval.End.Hour() != 23 {
		t.Errorf("expected end of day interval end, got %v", output.Summary.Interval.End)
	}
}

func TestGetSummary_RejectsHalfRange(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeExpenseSource{})

	start := dateAt(2024, 3, 1)
	_, err := uc.Execute(context.Background(), GetSummaryInput{StartDate: &start})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Fatalf("expected invalid date range error, got %v", err)
	}

	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeInvalidDateRange {
		t.Errorf("expected code %s, got %+v", domainerror.ErrCodeInvalidDateRange, err)
	}
}

func TestGetSummary_RejectsInvertedRange(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeExpenseSource{})

	start := dateAt(2024, 3, 10)
	end := dateAt(2024, 3, 1)
	_, err := uc.Execute(context.Background(), GetSummaryInput{StartDate: &start, EndDate: &end})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Fatalf("expected invalid date range error, got %v", err)
	}
}

func TestGetSummary_RejectsUnknownPeriod(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeExpenseSource{})

	_, err := uc.Execute(context.Background(), GetSummaryInput{Period: "quarter"})
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Fatalf("expected invalid period error, got %v", err)
	}
}

func TestGetTrends_CustomRange(t *testing.T) {
	repo := &fakeExpenseSource{expenses: []*entity.ExpenseWithCategory{
		expenseOn(10, "food", dateAt(2024, 3, 10)),
		expenseOn(20, "food", dateAt(2024, 3, 12)),
	}}
	uc := NewGetTrendsUseCase(repo)

	start := dateAt(2024, 3, 10)
	end := dateAt(2024, 3, 12)
	output, err := uc.Execute(context.Background(), GetTrendsInput{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(output.Trends) != 3 {
		t.Fatalf("expected 3 points, got %d", len(output.Trends))
	}
	if !output.Trends[0].TotalAmount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10 on the first day, got %s", output.Trends[0].TotalAmount)
	}
	if !output.Trends[1].TotalAmount.IsZero() {
		t.Errorf("expected zero-filled middle day, got %s", output.Trends[1].TotalAmount)
	}
	if !output.Trends[2].TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected 20 on the last day, got %s", output.Trends[2].TotalAmount)
	}
}

func TestGetTrends_RejectsOversizedRange(t *testing.T) {
	uc := NewGetTrendsUseCase(&fakeExpenseSource{})

	start := dateAt(2023, 1, 1)
	end := dateAt(2024, 6, 1)
	_, err := uc.Execute(context.Background(), GetTrendsInput{StartDate: &start, EndDate: &end})
	if !errors.Is(err, domainerror.ErrInvalidTrendDays) {
		t.Fatalf("expected trend window error, got %v", err)
	}
}

func TestGetTrends_DefaultWindow(t *testing.T) {
	repo := &fakeExpenseSource{}
	uc := NewGetTrendsUseCase(repo)

	output, err := uc.Execute(context.Background(), GetTrendsInput{Reference: dateAt(2024, 3, 31)})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(output.Trends) != DefaultTrendDays {
		t.Errorf("expected %d points, got %d", DefaultTrendDays, len(output.Trends))
	}
	last := output.Trends[len(output.Trends)-1]
	if last.Date.Day() != 31 || last.Date.Month() != time.March {
		t.Errorf("expected the window to end on the reference day, got %v", last.Date)
	}
}