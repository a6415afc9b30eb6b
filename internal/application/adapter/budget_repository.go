// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// ListAll retrieves all budgets, active and inactive, newest first.
	ListAll(ctx context.Context) ([]*entity.Budget, error)

	// ListActive retrieves all active budgets.
	ListActive(ctx context.Context) ([]*entity.Budget, error)

	// ExistsActiveForCategory checks whether an active budget already covers
	// the given scope. categoryID nil means the whole-spend budget; excludeID
	// skips one budget so updates do not collide with themselves.
	ExistsActiveForCategory(ctx context.Context, categoryID *string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
