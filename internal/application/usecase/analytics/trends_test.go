// Package analytics contains the spending analytics use cases.
package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

func TestBuildDailySeries_FillsGapsWithZeros(t *testing.T) {
	interval := valueobject.NewInterval(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 16, 23, 59, 59, 999999999, time.UTC),
	)

	expenses := []*entity.Expense{
		expenseDated(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)),
	}

	series := BuildDailySeries(expenses, interval)

	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}

	// Day one has two expenses of 10 each.
	if !series[0].TotalAmount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected day one total 20, got %s", series[0].TotalAmount)
	}
	if series[0].ExpenseCount != 2 {
		t.Errorf("expected day one count 2, got %d", series[0].ExpenseCount)
	}

	// Days without expenses appear with zero values.
	for _, idx := range []int{1, 2, 3, 5, 6} {
		if !series[idx].TotalAmount.IsZero() {
			t.Errorf("expected zero total at index %d, got %s", idx, series[idx].TotalAmount)
		}
		if series[idx].ExpenseCount != 0 {
			t.Errorf("expected zero count at index %d, got %d", idx, series[idx].ExpenseCount)
		}
	}

	if !series[4].TotalAmount.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10 on march 14, got %s", series[4].TotalAmount)
	}
}

func TestBuildDailySeries_DatesAreSequential(t *testing.T) {
	interval := valueobject.NewInterval(
		time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 23, 59, 59, 999999999, time.UTC),
	)

	series := BuildDailySeries(nil, interval)

	if len(series) != 5 {
		t.Fatalf("expected 5 points spanning the leap boundary, got %d", len(series))
	}

	for i := 1; i < len(series); i++ {
		wantNext := series[i-1].Date.AddDate(0, 0, 1)
		if !series[i].Date.Equal(wantNext) {
			t.Errorf("point %d: expected date %v, got %v", i, wantNext, series[i].Date)
		}
	}
}

func TestBuildDailySeries_IgnoresExpensesOutsideWindow(t *testing.T) {
	interval := valueobject.NewInterval(
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 23, 59, 59, 999999999, time.UTC),
	)

	expenses := []*entity.Expense{
		expenseDated(time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 3, 13, 1, 0, 0, 0, time.UTC)),
	}

	series := BuildDailySeries(expenses, interval)

	for i, point := range series {
		if !point.TotalAmount.IsZero() {
			t.Errorf("point %d: expected zero total, got %s", i, point.TotalAmount)
		}
	}
}
