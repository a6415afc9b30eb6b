// Package analytics contains the spending analytics use cases.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// UncategorizedID is the synthetic category id for expenses without a catalog entry.
const UncategorizedID = "uncategorized"

// UncategorizedName is the display name for the synthetic category.
const UncategorizedName = "Uncategorized"

// UncategorizedColor is the color for the synthetic category.
const UncategorizedColor = "#6B7280"

// UncategorizedEmoji is the emoji for the synthetic category.
const UncategorizedEmoji = "❓"

// UncategorizedIcon is the icon for the synthetic category.
const UncategorizedIcon = "help-circle"

// BuildSummary aggregates the expenses falling inside the interval into a
// total and a per-category breakdown sorted by amount descending (ties broken
// by category id so output order is deterministic). Expenses whose category
// could not be resolved are grouped under a synthetic uncategorized entry.
// Malformed expenses are skipped rather than failing the summary.
//
// BuildSummary is a pure function: it reads no clock and touches no storage,
// so calling it twice with the same snapshot yields identical results.
func BuildSummary(expenses []*entity.ExpenseWithCategory, interval valueobject.Interval) *valueobject.SpendingSummary {
	type group struct {
		category *entity.Category
		total    decimal.Decimal
		count    int
	}

	total := decimal.Zero
	counted := 0
	groups := make(map[string]*group)

	for _, item := range expenses {
		if item == nil || !item.Expense.IsValid() {
			continue
		}
		if !interval.Contains(item.Expense.Date) {
			continue
		}

		category := item.Category
		if category == nil {
			category = uncategorizedCategory()
		}

		g, ok := groups[category.ID]
		if !ok {
			g = &group{category: category, total: decimal.Zero}
			groups[category.ID] = g
		}
		g.total = g.total.Add(item.Expense.Amount)
		g.count++

		total = total.Add(item.Expense.Amount)
		counted++
	}

	breakdown := make([]valueobject.CategorySpending, 0, len(groups))
	for _, g := range groups {
		var percentage float64
		if !total.IsZero() {
			pct := g.total.Mul(decimal.NewFromInt(100)).Div(total)
			percentage, _ = pct.Round(2).Float64()
		}

		breakdown = append(breakdown, valueobject.CategorySpending{
			Category:     g.category,
			TotalAmount:  g.total,
			Percentage:   percentage,
			ExpenseCount: g.count,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].TotalAmount.Equal(breakdown[j].TotalAmount) {
			return breakdown[i].TotalAmount.GreaterThan(breakdown[j].TotalAmount)
		}
		return breakdown[i].Category.ID < breakdown[j].Category.ID
	})

	return &valueobject.SpendingSummary{
		Interval:     interval,
		TotalAmount:  total,
		ExpenseCount: counted,
		Breakdown:    breakdown,
	}
}

func uncategorizedCategory() *entity.Category {
	return &entity.Category{
		ID:    UncategorizedID,
		Name:  UncategorizedName,
		Color: UncategorizedColor,
		Emoji: UncategorizedEmoji,
		Icon:  UncategorizedIcon,
	}
}
