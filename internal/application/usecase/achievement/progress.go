// Package achievement contains the gamification engine: the static definition
// catalog, the progress rules, and the use cases that evaluate and persist
// achievement state.
package achievement

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// evaluationInput is the record snapshot one evaluation runs against.
type evaluationInput struct {
	expenses  []*entity.Expense
	budgets   []*entity.Budget
	reference time.Time
}

// progressRule computes the 0-100 progress of one definition from the
// snapshot. Definitions without a rule are driven by external telemetry and
// keep whatever progress was last persisted.
type progressRule func(in evaluationInput) int

var progressRules = map[string]progressRule{
	AchievementFirstExpense: func(in evaluationInput) int {
		return binaryProgress(countValid(in.expenses) >= 1)
	},
	AchievementFirstBudget: func(in evaluationInput) int {
		return binaryProgress(countBudgets(in.budgets) >= 1)
	},
	AchievementCategoryExplorer: func(in evaluationInput) int {
		return ratioProgress(countDistinctCategories(in.expenses), 5)
	},
	AchievementNoteTaker: func(in evaluationInput) int {
		return ratioProgress(countNoted(in.expenses), 10)
	},
	AchievementStreak7: func(in evaluationInput) int {
		return ratioProgress(consecutiveExpenseDays(in.expenses, in.reference), 7)
	},
	AchievementStreak30: func(in evaluationInput) int {
		return ratioProgress(consecutiveExpenseDays(in.expenses, in.reference), 30)
	},
	AchievementStreak100: func(in evaluationInput) int {
		return ratioProgress(consecutiveExpenseDays(in.expenses, in.reference), 100)
	},
	AchievementExpense100: func(in evaluationInput) int {
		return ratioProgress(countValid(in.expenses), 100)
	},
	AchievementExpense500: func(in evaluationInput) int {
		return ratioProgress(countValid(in.expenses), 500)
	},
	AchievementSpend10K: func(in evaluationInput) int {
		return amountProgress(totalSpend(in.expenses), decimal.NewFromInt(10000))
	},
	AchievementBudgetKeeper: func(in evaluationInput) int {
		return ratioProgress(trailingDisciplineMonths(in, 1), 1)
	},
	AchievementBudgetMaster: func(in evaluationInput) int {
		return ratioProgress(trailingDisciplineMonths(in, 3), 3)
	},
	AchievementBudgetLegend: func(in evaluationInput) int {
		return ratioProgress(trailingDisciplineMonths(in, 6), 6)
	},
	AchievementSavingsHero: savingsHeroProgress,
}

// Evaluate recomputes every achievement in defs against the given snapshot
// and merges the result with the previously persisted states. The unlock flag
// is monotonic: once a definition has unlocked it stays unlocked no matter
// what later snapshots look like, and its unlock timestamp is written exactly
// once, at the evaluation instant of the unlocking call. The second return
// value is the subset that transitioned from locked to unlocked in this call.
//
// Evaluate is a pure function of its inputs and never reads the system clock.
func Evaluate(defs []entity.AchievementDefinition, expenses []*entity.Expense, budgets []*entity.Budget, prior map[string]*entity.AchievementState, reference time.Time) ([]entity.Achievement, []entity.Achievement) {
	in := evaluationInput{expenses: expenses, budgets: budgets, reference: reference}

	all := make([]entity.Achievement, 0, len(defs))
	newlyUnlocked := make([]entity.Achievement, 0)

	for _, def := range defs {
		var (
			progress   int
			unlocked   bool
			unlockedAt *time.Time
		)
		if state, ok := prior[def.ID]; ok && state != nil {
			progress = state.Progress
			unlocked = state.IsUnlocked
			unlockedAt = state.UnlockedAt
		}

		if rule, ok := progressRules[def.ID]; ok {
			progress = rule(in)
		}

		wasUnlocked := unlocked
		if progress >= 100 {
			unlocked = true
		}
		if unlocked && !wasUnlocked {
			at := reference
			unlockedAt = &at
		}

		a := entity.Achievement{
			Definition: def,
			Progress:   progress,
			IsUnlocked: unlocked,
			UnlockedAt: unlockedAt,
		}
		all = append(all, a)
		if unlocked && !wasUnlocked {
			newlyUnlocked = append(newlyUnlocked, a)
		}
	}

	return all, newlyUnlocked
}

// binaryProgress maps a done flag to 0 or 100.
func binaryProgress(done bool) int {
	if done {
		return 100
	}
	return 0
}

// ratioProgress scales an integer count against its threshold, rounded to the
// nearest percent and capped at 100.
func ratioProgress(actual, threshold int) int {
	if threshold <= 0 || actual <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(actual) / float64(threshold)))
	if p > 100 {
		return 100
	}
	return p
}

// amountProgress scales a decimal amount against its threshold, rounded to
// the nearest percent and capped at 100.
func amountProgress(actual, threshold decimal.Decimal) int {
	if !threshold.IsPositive() || actual.IsNegative() {
		return 0
	}
	p := actual.Mul(decimal.NewFromInt(100)).Div(threshold).Round(0).IntPart()
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return int(p)
}

func countValid(expenses []*entity.Expense) int {
	count := 0
	for _, e := range expenses {
		if e.IsValid() {
			count++
		}
	}
	return count
}

func countBudgets(budgets []*entity.Budget) int {
	count := 0
	for _, b := range budgets {
		if b != nil {
			count++
		}
	}
	return count
}

func countDistinctCategories(expenses []*entity.Expense) int {
	seen := make(map[string]struct{})
	for _, e := range expenses {
		if !e.IsValid() || e.CategoryID == "" {
			continue
		}
		seen[e.CategoryID] = struct{}{}
	}
	return len(seen)
}

func countNoted(expenses []*entity.Expense) int {
	count := 0
	for _, e := range expenses {
		if e.IsValid() && e.HasNote() {
			count++
		}
	}
	return count
}

func totalSpend(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.IsValid() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// consecutiveExpenseDays counts calendar days with at least one expense,
// walking backward from the reference day. The reference day itself must have
// an expense for the count to be non-zero.
func consecutiveExpenseDays(expenses []*entity.Expense, reference time.Time) int {
	days := make(map[string]struct{}, len(expenses))
	for _, e := range expenses {
		if !e.IsValid() {
			continue
		}
		days[e.Date.Format(dayLayout)] = struct{}{}
	}

	streak := 0
	day := startOfDay(reference)
	for {
		if _, ok := days[day.Format(dayLayout)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// trailingDisciplineMonths counts consecutive months, walking back from the
// month containing the reference instant, in which total spend stayed within
// the combined monthly-equivalent amount of the active budgets. A month with
// no active budget breaks the run. The scan stops once maxMonths is reached.
func trailingDisciplineMonths(in evaluationInput, maxMonths int) int {
	months := 0
	anchor := time.Date(in.reference.Year(), in.reference.Month(), 1, 0, 0, 0, 0, in.reference.Location())

	for months < maxMonths {
		monthEnd := endOfDay(anchor.AddDate(0, 1, -1))
		budgetTotal := activeBudgetTotal(in.budgets, monthEnd)
		if !budgetTotal.IsPositive() {
			break
		}
		if spendBetween(in.expenses, anchor, monthEnd).GreaterThan(budgetTotal) {
			break
		}
		months++
		anchor = anchor.AddDate(0, -1, 0)
	}
	return months
}

// savingsHeroProgress is all-or-nothing: 100 when the current month's spend
// is at or below 80% of the combined monthly-equivalent budget amount.
func savingsHeroProgress(in evaluationInput) int {
	monthStart := time.Date(in.reference.Year(), in.reference.Month(), 1, 0, 0, 0, 0, in.reference.Location())
	monthEnd := endOfDay(monthStart.AddDate(0, 1, -1))

	budgetTotal := activeBudgetTotal(in.budgets, monthEnd)
	if !budgetTotal.IsPositive() {
		return 0
	}

	target := budgetTotal.Mul(decimal.NewFromFloat(0.8))
	return binaryProgress(spendBetween(in.expenses, monthStart, monthEnd).LessThanOrEqual(target))
}

// activeBudgetTotal sums the monthly-equivalent amounts of active budgets
// whose start date falls on or before the month end.
func activeBudgetTotal(budgets []*entity.Budget, monthEnd time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		if b == nil || !b.IsActive {
			continue
		}
		if startOfDay(b.StartDate).After(monthEnd) {
			continue
		}
		total = total.Add(b.MonthlyEquivalent())
	}
	return total
}

func spendBetween(expenses []*entity.Expense, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if !e.IsValid() {
			continue
		}
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
