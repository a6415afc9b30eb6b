// Package report composes the monthly email digest from the analytics,
// budget, and achievement engines.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/usecase/achievement"
	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// TopCategoryCount is the number of categories shown in the digest.
const TopCategoryCount = 3

// BuildDigestInput represents the input for building a digest.
type BuildDigestInput struct {
	Reference time.Time // Zero value means "now"; the digest covers the month before it
}

// DigestCategory is one row of the digest's category breakdown.
type DigestCategory struct {
	Name       string
	Amount     decimal.Decimal
	Percentage float64
}

// DigestBudget is one row of the digest's budget recap.
type DigestBudget struct {
	Label      string // Category name, or "Overall spending"
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Percentage float64
	Status     valueobject.BudgetStatus
}

// DigestData is everything the monthly digest email renders.
type DigestData struct {
	ReportMonth   string // "2006-01"
	MonthLabel    string // e.g. "July 2026"
	TotalSpent    decimal.Decimal
	ExpenseCount  int
	PreviousTotal decimal.Decimal // Spend of the month before the report month
	ChangePercent float64         // vs PreviousTotal; 0 when there is no prior spend
	TopCategories []DigestCategory
	Budgets       []DigestBudget
	Unlocked      []string // Titles of achievements unlocked during the month
	Streak        int      // Logging streak as of the last day of the month
}

// BuildDigestOutput represents the output of building a digest.
type BuildDigestOutput struct {
	Data *DigestData
}

// BuildDigestUseCase assembles the previous month's digest from one
// storage snapshot.
type BuildDigestUseCase struct {
	expenseRepo     adapter.ExpenseRepository
	budgetRepo      adapter.BudgetRepository
	categoryRepo    adapter.CategoryRepository
	achievementRepo adapter.AchievementRepository
}

// NewBuildDigestUseCase creates a new BuildDigestUseCase instance.
func NewBuildDigestUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	achievementRepo adapter.AchievementRepository,
) *BuildDigestUseCase {
	return &BuildDigestUseCase{
		expenseRepo:     expenseRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		achievementRepo: achievementRepo,
	}
}

// Execute builds the digest for the calendar month before the reference.
// All figures derive from a single expense snapshot, so the totals, the
// budget recap, and the streak agree with each other.
func (uc *BuildDigestUseCase) Execute(ctx context.Context, input BuildDigestInput) (*BuildDigestOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}

	monthStart := previousMonthStart(reference)
	monthEnd := endOfDay(monthStart.AddDate(0, 1, -1))
	interval := valueobject.NewInterval(monthStart, monthEnd)

	withCategory, err := uc.expenseRepo.ListAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expenses := make([]*entity.Expense, 0, len(withCategory))
	for _, item := range withCategory {
		if item == nil {
			continue
		}
		expenses = append(expenses, item.Expense)
	}

	summary := analytics.BuildSummary(withCategory, interval)

	data := &DigestData{
		ReportMonth:  monthStart.Format("2006-01"),
		MonthLabel:   monthStart.Format("January 2006"),
		TotalSpent:   summary.TotalAmount,
		ExpenseCount: summary.ExpenseCount,
		Streak:       analytics.CurrentStreak(expenses, monthEnd),
	}

	for _, spending := range summary.Breakdown {
		if len(data.TopCategories) == TopCategoryCount {
			break
		}
		data.TopCategories = append(data.TopCategories, DigestCategory{
			Name:       spending.Category.Name,
			Amount:     spending.TotalAmount,
			Percentage: spending.Percentage,
		})
	}

	previousStart := monthStart.AddDate(0, -1, 0)
	previousInterval := valueobject.NewInterval(previousStart, endOfDay(previousStart.AddDate(0, 1, -1)))
	data.PreviousTotal = analytics.BuildSummary(withCategory, previousInterval).TotalAmount
	if data.PreviousTotal.IsPositive() {
		change := data.TotalSpent.Sub(data.PreviousTotal).
			Mul(decimal.NewFromInt(100)).
			Div(data.PreviousTotal)
		data.ChangePercent, _ = change.Round(2).Float64()
	}

	budgets, err := uc.budgetRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	for _, b := range budgets {
		// The cycle containing the last day of the report month is the one
		// the reader was living in when the month closed.
		analysis := budget.Analyze(b, expenses, monthEnd, valueobject.CycleCurrent)

		label := "Overall spending"
		if b.CategoryID != nil {
			category, err := uc.categoryRepo.FindByID(ctx, *b.CategoryID)
			if err == nil && category != nil {
				label = category.Name
			} else {
				label = *b.CategoryID
			}
		}

		data.Budgets = append(data.Budgets, DigestBudget{
			Label:      label,
			Spent:      analysis.ActualSpent,
			Limit:      analysis.BudgetAmount,
			Percentage: analysis.Percentage,
			Status:     analysis.Status,
		})
	}

	states, err := uc.achievementRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement states: %w", err)
	}

	titles := make(map[string]string)
	for _, def := range achievement.Definitions() {
		titles[def.ID] = def.Title
	}
	for _, state := range states {
		if state == nil || state.UnlockedAt == nil {
			continue
		}
		if !interval.Contains(*state.UnlockedAt) {
			continue
		}
		if title, ok := titles[state.DefinitionID]; ok {
			data.Unlocked = append(data.Unlocked, title)
		}
	}

	return &BuildDigestOutput{Data: data}, nil
}

// previousMonthStart returns midnight on the first day of the month before
// the one containing the reference.
func previousMonthStart(reference time.Time) time.Time {
	firstOfMonth := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	return firstOfMonth.AddDate(0, -1, 0)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
