// Package budget contains the budget management and analysis use cases.
package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// WarningThresholdPercent is the spent-percentage above which a budget cycle
// is flagged as warning even before the projection exceeds the limit.
const WarningThresholdPercent = 80

// Analyze computes the budget-vs-actual picture for one billing cycle: spend
// inside the cycle, remaining amount, elapsed-day metrics, a linear
// projection to cycle end, and the good/warning/danger classification.
//
// Analyze is a pure function of its inputs. It never reads the system clock;
// callers pass the reference instant, which makes every result reproducible
// with fixed dates. Expenses outside the cycle, for other categories, or
// malformed are ignored.
func Analyze(b *entity.Budget, expenses []*entity.Expense, reference time.Time, selection valueobject.CycleSelection) *valueobject.BudgetAnalysis {
	cycle := ResolveCycle(b, reference, selection)

	actualSpent := decimal.Zero
	for _, e := range expenses {
		if !e.IsValid() {
			continue
		}
		if !cycle.Contains(e.Date) {
			continue
		}
		if b.CategoryID != nil && e.CategoryID != *b.CategoryID {
			continue
		}
		actualSpent = actualSpent.Add(e.Amount)
	}

	remaining := b.Amount.Sub(actualSpent)
	isOverBudget := actualSpent.GreaterThan(b.Amount)

	var percentage float64
	if !b.Amount.IsZero() {
		pct := actualSpent.Mul(decimal.NewFromInt(100)).Div(b.Amount)
		percentage, _ = pct.Round(2).Float64()
	}

	daysInPeriod := cycle.Days()
	daysPassed := elapsedDays(cycle.Start, reference)
	if daysPassed > daysInPeriod {
		daysPassed = daysInPeriod
	}
	daysRemaining := daysInPeriod - daysPassed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	dailyAverage := decimal.Zero
	if daysPassed > 0 {
		dailyAverage = actualSpent.Div(decimal.NewFromInt(int64(daysPassed)))
	}
	projectedTotal := dailyAverage.Mul(decimal.NewFromInt(int64(daysInPeriod)))

	divisor := daysRemaining
	if divisor < 1 {
		divisor = 1
	}
	recommendedDaily := remaining.Div(decimal.NewFromInt(int64(divisor)))

	return &valueobject.BudgetAnalysis{
		Budget:           b,
		Cycle:            cycle,
		BudgetAmount:     b.Amount,
		ActualSpent:      actualSpent,
		Remaining:        remaining,
		Percentage:       percentage,
		IsOverBudget:     isOverBudget,
		DaysInPeriod:     daysInPeriod,
		DaysPassed:       daysPassed,
		DaysRemaining:    daysRemaining,
		DailyAverage:     dailyAverage,
		ProjectedTotal:   projectedTotal,
		RecommendedDaily: recommendedDaily,
		Status:           classifyStatus(isOverBudget, percentage, projectedTotal, b.Amount),
	}
}

// elapsedDays counts full or partial days between the cycle start and the
// reference instant, rounded up, floored at zero. A reference exactly at the
// cycle start yields zero elapsed days.
func elapsedDays(cycleStart, reference time.Time) int {
	if !reference.After(cycleStart) {
		return 0
	}
	hours := reference.Sub(cycleStart).Hours()
	return int(math.Ceil(hours / 24))
}

// classifyStatus applies the three-level classification in precedence order:
// danger when over budget, warning when past the percentage threshold or
// projected to exceed the limit, good otherwise.
func classifyStatus(isOverBudget bool, percentage float64, projectedTotal, budgetAmount decimal.Decimal) valueobject.BudgetStatus {
	if isOverBudget {
		return valueobject.BudgetStatusDanger
	}
	if percentage > WarningThresholdPercent || projectedTotal.GreaterThan(budgetAmount) {
		return valueobject.BudgetStatusWarning
	}
	return valueobject.BudgetStatusGood
}
