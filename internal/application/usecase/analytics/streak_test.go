// Package analytics contains the spending analytics use cases.
package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

func expenseDated(date time.Time) *entity.Expense {
	return entity.NewExpense(decimal.NewFromInt(10), "food", "streak expense", date, "")
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	daysAgo := func(n int) time.Time {
		return today.AddDate(0, 0, -n).Add(12 * time.Hour)
	}

	tests := []struct {
		name     string
		expenses []*entity.Expense
		want     int
	}{
		{
			name:     "empty expense list",
			expenses: nil,
			want:     0,
		},
		{
			name:     "single expense today",
			expenses: []*entity.Expense{expenseDated(daysAgo(0))},
			want:     1,
		},
		{
			name: "five contiguous days ending today",
			expenses: []*entity.Expense{
				expenseDated(daysAgo(0)),
				expenseDated(daysAgo(1)),
				expenseDated(daysAgo(2)),
				expenseDated(daysAgo(3)),
				expenseDated(daysAgo(4)),
			},
			want: 5,
		},
		{
			name: "gap two days ago truncates the streak",
			expenses: []*entity.Expense{
				expenseDated(daysAgo(0)),
				expenseDated(daysAgo(1)),
				expenseDated(daysAgo(3)),
			},
			want: 2,
		},
		{
			name: "no expense today means zero regardless of prior run",
			expenses: []*entity.Expense{
				expenseDated(daysAgo(1)),
				expenseDated(daysAgo(2)),
				expenseDated(daysAgo(3)),
			},
			want: 0,
		},
		{
			name: "multiple expenses on one day count once",
			expenses: []*entity.Expense{
				expenseDated(daysAgo(0)),
				expenseDated(daysAgo(0)),
				expenseDated(daysAgo(0)),
				expenseDated(daysAgo(1)),
			},
			want: 2,
		},
		{
			name: "future-dated expense does not extend the streak",
			expenses: []*entity.Expense{
				expenseDated(daysAgo(0)),
				expenseDated(today.AddDate(0, 0, 1)),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.expenses, today); got != tt.want {
				t.Errorf("expected streak %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCurrentStreak_MidDayReference(t *testing.T) {
	// The reference instant's time of day must not affect day bucketing.
	today := time.Date(2024, 3, 16, 18, 45, 12, 0, time.UTC)

	expenses := []*entity.Expense{
		expenseDated(time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)),
	}

	if got := CurrentStreak(expenses, today); got != 2 {
		t.Errorf("expected streak 2, got %d", got)
	}
}

func TestCurrentStreak_SkipsMalformedExpenses(t *testing.T) {
	today := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	broken := entity.NewExpense(decimal.NewFromInt(-1), "food", "bad row", today, "")
	expenses := []*entity.Expense{broken}

	if got := CurrentStreak(expenses, today); got != 0 {
		t.Errorf("expected streak 0 when only malformed records exist, got %d", got)
	}
}

func TestCurrentStreak_MonthBoundary(t *testing.T) {
	today := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	expenses := []*entity.Expense{
		expenseDated(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)),
		expenseDated(time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC)),
	}

	if got := CurrentStreak(expenses, today); got != 3 {
		t.Errorf("expected streak 3 across the month boundary, got %d", got)
	}
}
