// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AchievementRepository defines the interface for achievement state persistence.
// Only the unlock flag, its timestamp, and the last progress value are stored;
// everything else is recomputed from the expense and budget snapshots.
type AchievementRepository interface {
	// GetAll retrieves every persisted achievement state, keyed by definition id.
	GetAll(ctx context.Context) ([]*entity.AchievementState, error)

	// Get retrieves the state for a single definition id. It returns nil
	// with no error when no state has been stored for that id yet.
	Get(ctx context.Context, definitionID string) (*entity.AchievementState, error)

	// SaveAll upserts the given states in one batch.
	SaveAll(ctx context.Context, states []*entity.AchievementState) error
}
