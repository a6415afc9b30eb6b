// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single logged expense in the SpendWise system.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal // Always positive
	CategoryID  string          // Slug from the category catalog; empty = uncategorized
	Description string
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	amount decimal.Decimal,
	categoryID string,
	description string,
	date time.Time,
	notes string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValid reports whether the expense is well-formed enough to be counted
// by the analytics engine. Malformed records (non-positive amount or zero
// date) are skipped by aggregations rather than failing the whole report.
func (e *Expense) IsValid() bool {
	return e != nil && e.Amount.IsPositive() && !e.Date.IsZero()
}

// HasNote reports whether the expense carries a non-empty note after trimming.
func (e *Expense) HasNote() bool {
	return strings.TrimSpace(e.Notes) != ""
}

// ExpenseWithCategory represents an expense with its resolved category.
// Category is nil when the expense references no catalog entry.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*ExpenseWithCategory
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
