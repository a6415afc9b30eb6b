// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// AchievementTier represents the rarity tier of an achievement.
type AchievementTier string

const (
	AchievementTierBronze   AchievementTier = "bronze"
	AchievementTierSilver   AchievementTier = "silver"
	AchievementTierGold     AchievementTier = "gold"
	AchievementTierPlatinum AchievementTier = "platinum"
)

// AchievementCategory groups achievements for presentation.
type AchievementCategory string

const (
	AchievementCategoryMilestone AchievementCategory = "milestone"
	AchievementCategoryStreak    AchievementCategory = "streak"
	AchievementCategoryBudget    AchievementCategory = "budget"
	AchievementCategorySpending  AchievementCategory = "spending"
	AchievementCategorySpecial   AchievementCategory = "special"
)

// AchievementDefinition is a static catalog entry describing one achievement.
// Definitions carry presentation fields only; the progress rules live with
// the evaluation engine.
type AchievementDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    AchievementCategory
	Tier        AchievementTier
	Requirement string
	Reward      string
}

// AchievementState is the persisted portion of an achievement: the unlock
// flag, its timestamp, and the last computed progress. Everything else is
// recomputed on demand.
type AchievementState struct {
	DefinitionID string
	Progress     int // 0-100
	IsUnlocked   bool
	UnlockedAt   *time.Time
	UpdatedAt    time.Time
}

// NewAchievementState creates a locked, zero-progress state for a definition.
func NewAchievementState(definitionID string) *AchievementState {
	return &AchievementState{
		DefinitionID: definitionID,
		Progress:     0,
		IsUnlocked:   false,
		UpdatedAt:    time.Now().UTC(),
	}
}

// Achievement is the merged view returned to callers: a definition plus its
// current evaluated state.
type Achievement struct {
	Definition AchievementDefinition
	Progress   int // 0-100
	IsUnlocked bool
	UnlockedAt *time.Time
}
