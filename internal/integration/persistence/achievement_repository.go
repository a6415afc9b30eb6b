// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// achievementRepository implements the adapter.AchievementRepository interface.
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository instance.
func NewAchievementRepository(db *gorm.DB) adapter.AchievementRepository {
	return &achievementRepository{
		db: db,
	}
}

// GetAll retrieves every stored achievement state.
func (r *achievementRepository) GetAll(ctx context.Context) ([]*entity.AchievementState, error) {
	var stateModels []model.AchievementStateModel
	result := r.db.WithContext(ctx).
		Order("definition_id ASC").
		Find(&stateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	states := make([]*entity.AchievementState, len(stateModels))
	for i, sm := range stateModels {
		states[i] = sm.ToEntity()
	}
	return states, nil
}

// Get retrieves the state for one definition. A missing row is not an
// error; the definition catalog lives in code and rows appear only once
// progress is recorded.
func (r *achievementRepository) Get(ctx context.Context, definitionID string) (*entity.AchievementState, error) {
	var stateModel model.AchievementStateModel
	result := r.db.WithContext(ctx).
		Where("definition_id = ?", definitionID).
		First(&stateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return stateModel.ToEntity(), nil
}

// SaveAll upserts the given achievement states in one transaction, so a
// partial evaluation never reaches storage.
func (r *achievementRepository) SaveAll(ctx context.Context, states []*entity.AchievementState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, state := range states {
			if err := tx.Save(model.AchievementStateFromEntity(state)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
