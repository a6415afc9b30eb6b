// Package budget contains the budget management and analysis use cases.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/valueobject"
)

// BuildInsights derives presentation messages from a budget analysis: the
// over-budget callout, the trending-over projection, the on-track note near
// cycle end, and the recommended daily spend for the remainder.
func BuildInsights(analysis *valueobject.BudgetAnalysis) []valueobject.BudgetInsight {
	insights := make([]valueobject.BudgetInsight, 0, 2)

	if analysis.IsOverBudget {
		insights = append(insights, valueobject.BudgetInsight{
			Severity: valueobject.InsightSeverityCritical,
			Message: fmt.Sprintf(
				"Over budget by %s this cycle",
				formatAmount(analysis.Remaining.Neg()),
			),
		})
		return insights
	}

	if analysis.ProjectedTotal.GreaterThan(analysis.BudgetAmount) {
		overage := analysis.ProjectedTotal.Sub(analysis.BudgetAmount)
		insights = append(insights, valueobject.BudgetInsight{
			Severity: valueobject.InsightSeverityWarning,
			Message: fmt.Sprintf(
				"On pace to spend %s, %s over the limit",
				formatAmount(analysis.ProjectedTotal),
				formatAmount(overage),
			),
		})
	}

	if analysis.Status == valueobject.BudgetStatusGood && isLateInCycle(analysis) {
		insights = append(insights, valueobject.BudgetInsight{
			Severity: valueobject.InsightSeverityInfo,
			Message: fmt.Sprintf(
				"On track: %s left with %d days to go",
				formatAmount(analysis.Remaining),
				analysis.DaysRemaining,
			),
		})
	}

	if analysis.DaysRemaining > 0 {
		insights = append(insights, valueobject.BudgetInsight{
			Severity: valueobject.InsightSeverityInfo,
			Message: fmt.Sprintf(
				"You can spend %s per day for the rest of the cycle",
				formatAmount(analysis.RecommendedDaily),
			),
		})
	}

	return insights
}

// isLateInCycle reports whether at least three quarters of the cycle has passed.
func isLateInCycle(analysis *valueobject.BudgetAnalysis) bool {
	if analysis.DaysInPeriod == 0 {
		return false
	}
	return analysis.DaysPassed*4 >= analysis.DaysInPeriod*3
}

// formatAmount renders a decimal as a rupee amount with two places.
func formatAmount(amount decimal.Decimal) string {
	return "₹" + amount.Round(2).StringFixed(2)
}
