// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetStatus is the three-level health classification of a budget cycle.
type BudgetStatus string

const (
	BudgetStatusGood    BudgetStatus = "good"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusDanger  BudgetStatus = "danger"
)

// CycleSelection picks which billing cycle of a budget to analyze.
type CycleSelection string

const (
	CycleCurrent  CycleSelection = "current"
	CyclePrevious CycleSelection = "previous"
)

// InsightSeverity ranks budget insight messages for presentation.
type InsightSeverity string

const (
	InsightSeverityInfo     InsightSeverity = "info"
	InsightSeverityWarning  InsightSeverity = "warning"
	InsightSeverityCritical InsightSeverity = "critical"
)

// BudgetAnalysis is the derived budget-vs-actual result for one billing
// cycle. It is a pure function of the budget, the expense snapshot, and the
// reference instant; nothing here is persisted.
type BudgetAnalysis struct {
	Budget   *entity.Budget
	Category *entity.Category // nil for whole-spend budgets

	Cycle Interval

	BudgetAmount decimal.Decimal
	ActualSpent  decimal.Decimal
	Remaining    decimal.Decimal // Negative when over budget
	Percentage   float64         // 0-100+ share of the budget spent
	IsOverBudget bool

	DaysInPeriod  int
	DaysPassed    int
	DaysRemaining int

	DailyAverage     decimal.Decimal // Spend per elapsed day
	ProjectedTotal   decimal.Decimal // Linear extrapolation to cycle end
	RecommendedDaily decimal.Decimal // Remaining / max(DaysRemaining, 1)

	Status BudgetStatus
}

// BudgetInsight is a presentation-ready observation derived from an analysis.
type BudgetInsight struct {
	Severity InsightSeverity
	Message  string
}
