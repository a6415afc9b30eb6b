// Package valueobject defines immutable value types shared across the domain.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CategorySpending is one row of a spending breakdown: everything spent on a
// single category within the summarized interval.
type CategorySpending struct {
	Category     *entity.Category
	TotalAmount  decimal.Decimal
	Percentage   float64 // 0-100 share of the summary total
	ExpenseCount int
}

// SpendingSummary is the derived result of summarizing expenses over an
// interval. It is recomputed on demand and never persisted.
type SpendingSummary struct {
	Interval     Interval
	TotalAmount  decimal.Decimal
	ExpenseCount int
	Breakdown    []CategorySpending // Sorted by TotalAmount descending
}
