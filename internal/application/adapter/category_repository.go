// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category catalog operations.
// The catalog is seeded once at startup and read-only afterwards.
type CategoryRepository interface {
	// FindByID retrieves a category by its slug id.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// ListAll retrieves the full catalog ordered by sort order.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// Exists checks whether a category slug is present in the catalog.
	Exists(ctx context.Context, id string) (bool, error)

	// Count returns the number of catalog entries.
	Count(ctx context.Context) (int64, error)

	// CreateBatch inserts catalog entries, skipping ids that already exist.
	// Used by startup seeding.
	CreateBatch(ctx context.Context, categories []*entity.Category) error
}
