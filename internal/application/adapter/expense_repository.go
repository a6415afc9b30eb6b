// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID string // Catalog slug; empty = all categories
	Search     string // Case-insensitive description match
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByIDWithCategory retrieves an expense with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error)

	// ListAll retrieves the full expense snapshot, newest first.
	// The analytics engine consumes this as one consistent point in time.
	ListAll(ctx context.Context) ([]*entity.Expense, error)

	// ListAllWithCategory retrieves the full expense snapshot with resolved
	// categories, newest first.
	ListAllWithCategory(ctx context.Context) ([]*entity.ExpenseWithCategory, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// Count returns the total number of expenses.
	Count(ctx context.Context) (int64, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
