// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/domain/entity"
)

// UserRepository defines the interface for account persistence operations.
// A SpendWise deployment has at most one user row.
type UserRepository interface {
	// Create creates the account in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindAccount retrieves the single account, if setup already ran.
	FindAccount(ctx context.Context) (*entity.User, error)

	// Update updates the account in the database.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the account from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists checks whether setup already created an account.
	Exists(ctx context.Context) (bool, error)
}
