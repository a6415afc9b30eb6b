// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence period of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
)

// WeeksPerMonth is the factor used to normalize weekly budgets to a monthly
// equivalent (365.25 / 12 / 7, rounded). Achievement rules depend on this
// exact value; changing it shifts unlock timing.
const WeeksPerMonth = 4.33

// Budget represents a recurring spending limit in the SpendWise system.
// The current billing cycle is never stored; it is recomputed from
// StartDate and a reference instant on every analysis.
type Budget struct {
	ID         uuid.UUID
	Amount     decimal.Decimal // Always positive
	Period     BudgetPeriod
	CategoryID *string // Slug from the category catalog; nil = whole-spend budget
	StartDate  time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(amount decimal.Decimal, period BudgetPeriod, categoryID *string, startDate time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		Amount:     amount,
		Period:     period,
		CategoryID: categoryID,
		StartDate:  startDate,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MonthlyEquivalent returns the budget amount normalized to one month.
// Weekly budgets are scaled by WeeksPerMonth; monthly budgets pass through.
func (b *Budget) MonthlyEquivalent() decimal.Decimal {
	if b.Period == BudgetPeriodWeekly {
		return b.Amount.Mul(decimal.NewFromFloat(WeeksPerMonth))
	}
	return b.Amount
}

// BudgetWithCategory represents a budget with its resolved category.
// Category is nil for whole-spend budgets.
type BudgetWithCategory struct {
	Budget   *Budget
	Category *Category
}
