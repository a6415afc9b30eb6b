// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AchievementStateModel represents the achievement_states table in the
// database. Only the mutable state is stored; the definition catalog lives
// in code and is joined at read time.
type AchievementStateModel struct {
	DefinitionID string       `gorm:"type:varchar(50);primaryKey"`
	Progress     int          `gorm:"not null;default:0"`
	IsUnlocked   bool         `gorm:"not null;default:false"`
	UnlockedAt   sql.NullTime `gorm:"type:timestamptz"`
	UpdatedAt    time.Time    `gorm:"not null"`
}

// TableName returns the table name for the AchievementStateModel.
func (AchievementStateModel) TableName() string {
	return "achievement_states"
}

// ToEntity converts an AchievementStateModel to a domain AchievementState entity.
func (m *AchievementStateModel) ToEntity() *entity.AchievementState {
	var unlockedAt *time.Time
	if m.UnlockedAt.Valid {
		unlockedAt = &m.UnlockedAt.Time
	}

	return &entity.AchievementState{
		DefinitionID: m.DefinitionID,
		Progress:     m.Progress,
		IsUnlocked:   m.IsUnlocked,
		UnlockedAt:   unlockedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AchievementStateFromEntity creates an AchievementStateModel from a domain AchievementState entity.
func AchievementStateFromEntity(state *entity.AchievementState) *AchievementStateModel {
	var unlockedAt sql.NullTime
	if state.UnlockedAt != nil {
		unlockedAt = sql.NullTime{Time: *state.UnlockedAt, Valid: true}
	}

	return &AchievementStateModel{
		DefinitionID: state.DefinitionID,
		Progress:     state.Progress,
		IsUnlocked:   state.IsUnlocked,
		UnlockedAt:   unlockedAt,
		UpdatedAt:    state.UpdatedAt,
	}
}
