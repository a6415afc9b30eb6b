// Package budget contains the budget management and analysis use cases.
package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

func expenseAt(amount float64, categoryID string, date time.Time) *entity.Expense {
	return entity.NewExpense(decimal.NewFromFloat(amount), categoryID, "test expense", date, "")
}

func TestAnalyze_MidCycleProjection(t *testing.T) {
	// A 3000 monthly budget starting March 1, analyzed on March 16: 15 days
	// have passed of a 31-day cycle, and 1500 has been spent. The daily
	// average of 100 projects to 3100, which crosses the budget amount and
	// flags the budget even though only half of it is spent.
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(600, "food", time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)),
		expenseAt(500, "transport", time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)),
		expenseAt(400, "food", time.Date(2024, 3, 14, 18, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if analysis.DaysInPeriod != 31 {
		t.Errorf("expected 31 days in period, got %d", analysis.DaysInPeriod)
	}
	if analysis.DaysPassed != 15 {
		t.Errorf("expected 15 days passed, got %d", analysis.DaysPassed)
	}
	if analysis.DaysRemaining != 16 {
		t.Errorf("expected 16 days remaining, got %d", analysis.DaysRemaining)
	}
	if !analysis.ActualSpent.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected actual spent 1500, got %s", analysis.ActualSpent)
	}
	if !analysis.Remaining.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected remaining 1500, got %s", analysis.Remaining)
	}
	if !analysis.DailyAverage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected daily average 100, got %s", analysis.DailyAverage)
	}
	if !analysis.ProjectedTotal.Equal(decimal.NewFromInt(3100)) {
		t.Errorf("expected projected total 3100, got %s", analysis.ProjectedTotal)
	}
	if analysis.Percentage != 50.0 {
		t.Errorf("expected percentage 50, got %v", analysis.Percentage)
	}
	if analysis.IsOverBudget {
		t.Error("expected budget not to be over")
	}
	if analysis.Status != valueobject.BudgetStatusWarning {
		t.Errorf("expected warning status, got %s", analysis.Status)
	}
}

func TestAnalyze_StatusClassification(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		spent      float64
		reference  time.Time
		wantStatus valueobject.BudgetStatus
		wantOver   bool
	}{
		{
			name:       "well under budget with a safe pace",
			spent:      1000,
			reference:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			wantStatus: valueobject.BudgetStatusGood,
		},
		{
			name:       "projection crosses the limit",
			spent:      1600,
			reference:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			wantStatus: valueobject.BudgetStatusWarning,
		},
		{
			name:       "past the usage threshold without projecting over",
			spent:      2500,
			reference:  time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC),
			wantStatus: valueobject.BudgetStatusWarning,
		},
		{
			name:       "spending above the amount is danger",
			spent:      3200,
			reference:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			wantStatus: valueobject.BudgetStatusDanger,
			wantOver:   true,
		},
		{
			name:       "spending exactly the amount is not over",
			spent:      3000,
			reference:  time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			wantStatus: valueobject.BudgetStatusWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := monthlyBudget(start)
			expenses := []*entity.Expense{
				expenseAt(tt.spent, "food", time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)),
			}

			analysis := Analyze(b, expenses, tt.reference, valueobject.CycleCurrent)

			if analysis.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, analysis.Status)
			}
			if analysis.IsOverBudget != tt.wantOver {
				t.Errorf("expected over budget %v, got %v", tt.wantOver, analysis.IsOverBudget)
			}
			if analysis.Status == valueobject.BudgetStatusDanger && !analysis.IsOverBudget {
				t.Error("danger status must imply an over-budget cycle")
			}
		})
	}
}

func TestAnalyze_CategoryScopedBudgetFiltersExpenses(t *testing.T) {
	categoryID := "food"
	b := entity.NewBudget(decimal.NewFromInt(1000), entity.BudgetPeriodMonthly, &categoryID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(300, "food", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
		expenseAt(250, "food", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		expenseAt(900, "transport", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		expenseAt(50, "entertainment", time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if !analysis.ActualSpent.Equal(decimal.NewFromInt(550)) {
		t.Errorf("expected actual spent 550, got %s", analysis.ActualSpent)
	}
}

func TestAnalyze_OverallBudgetCountsEveryCategory(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(300, "food", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
		expenseAt(900, "transport", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		expenseAt(50, "", time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if !analysis.ActualSpent.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("expected actual spent 1250, got %s", analysis.ActualSpent)
	}
}

func TestAnalyze_ExpensesOutsideTheCycleAreIgnored(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(400, "food", time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC)),
		expenseAt(500, "food", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		expenseAt(600, "food", time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if !analysis.ActualSpent.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected actual spent 500, got %s", analysis.ActualSpent)
	}
}

func TestAnalyze_PreviousCycleUsesItsOwnWindow(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(700, "food", time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)),
		expenseAt(200, "food", time.Date(2024, 4, 5, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CyclePrevious)

	if !analysis.ActualSpent.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected actual spent 700, got %s", analysis.ActualSpent)
	}
	if analysis.DaysPassed != analysis.DaysInPeriod {
		t.Errorf("expected a completed cycle, got %d of %d days", analysis.DaysPassed, analysis.DaysInPeriod)
	}
	if analysis.DaysRemaining != 0 {
		t.Errorf("expected 0 days remaining, got %d", analysis.DaysRemaining)
	}
}

func TestAnalyze_ReferenceAtCycleStart(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	analysis := Analyze(b, nil, reference, valueobject.CycleCurrent)

	if analysis.DaysPassed != 0 {
		t.Errorf("expected 0 days passed, got %d", analysis.DaysPassed)
	}
	if !analysis.DailyAverage.IsZero() {
		t.Errorf("expected zero daily average, got %s", analysis.DailyAverage)
	}
	if !analysis.ProjectedTotal.IsZero() {
		t.Errorf("expected zero projected total, got %s", analysis.ProjectedTotal)
	}
	if analysis.Status != valueobject.BudgetStatusGood {
		t.Errorf("expected good status, got %s", analysis.Status)
	}
}

func TestAnalyze_NoExpenses(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	analysis := Analyze(b, []*entity.Expense{}, reference, valueobject.CycleCurrent)

	if !analysis.ActualSpent.IsZero() {
		t.Errorf("expected zero spent, got %s", analysis.ActualSpent)
	}
	if !analysis.Remaining.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected full amount remaining, got %s", analysis.Remaining)
	}
	if analysis.Percentage != 0 {
		t.Errorf("expected zero percentage, got %v", analysis.Percentage)
	}
	if analysis.Status != valueobject.BudgetStatusGood {
		t.Errorf("expected good status, got %s", analysis.Status)
	}
}

func TestAnalyze_ZeroAmountBudgetDoesNotDivide(t *testing.T) {
	b := entity.NewBudget(decimal.Zero, entity.BudgetPeriodMonthly, nil, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(100, "food", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if analysis.Percentage != 0 {
		t.Errorf("expected zero percentage for a zero-amount budget, got %v", analysis.Percentage)
	}
	if !analysis.IsOverBudget {
		t.Error("expected spending against a zero amount to be over budget")
	}
}

func TestAnalyze_WeeklyCycle(t *testing.T) {
	b := weeklyBudget(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) // a Monday
	reference := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(120, "food", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)),
		expenseAt(180, "food", time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)),
		expenseAt(999, "food", time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if analysis.DaysInPeriod != 7 {
		t.Errorf("expected 7 days in period, got %d", analysis.DaysInPeriod)
	}
	if analysis.DaysPassed != 4 {
		t.Errorf("expected 4 days passed, got %d", analysis.DaysPassed)
	}
	if !analysis.ActualSpent.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected actual spent 300, got %s", analysis.ActualSpent)
	}
	if !analysis.DailyAverage.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected daily average 75, got %s", analysis.DailyAverage)
	}
	if !analysis.ProjectedTotal.Equal(decimal.NewFromInt(525)) {
		t.Errorf("expected projected total 525, got %s", analysis.ProjectedTotal)
	}
}

func TestAnalyze_RecommendedDaily(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(1400, "food", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	// 1600 left over 16 remaining days.
	if !analysis.RecommendedDaily.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected recommended daily 100, got %s", analysis.RecommendedDaily)
	}
}

func TestAnalyze_RecommendedDailyWhenOverBudget(t *testing.T) {
	b := monthlyBudget(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	reference := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		expenseAt(3500, "food", time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)),
	}

	analysis := Analyze(b, expenses, reference, valueobject.CycleCurrent)

	if !analysis.Remaining.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("expected remaining -500, got %s", analysis.Remaining)
	}
	// -500 spread over the 16 remaining days.
	if !analysis.RecommendedDaily.Equal(decimal.NewFromFloat(-31.25)) {
		t.Errorf("expected recommended daily -31.25, got %s", analysis.RecommendedDaily)
	}
}
