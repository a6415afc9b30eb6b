// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/achievement"
	"github.com/spendwise/backend/internal/domain/entity"
)

// TelemetryRequest represents the request body for reporting telemetry-driven
// achievement progress.
type TelemetryRequest struct {
	ID       string `json:"id" binding:"required"`
	Progress int    `json:"progress" binding:"min=0,max=100"`
}

// AchievementResponse represents a single achievement in API responses.
type AchievementResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Category    string     `json:"category"`
	Tier        string     `json:"tier"`
	Requirement string     `json:"requirement"`
	Reward      string     `json:"reward"`
	Progress    int        `json:"progress"`
	IsUnlocked  bool       `json:"is_unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementListResponse represents the response for listing achievements.
type AchievementListResponse struct {
	Achievements  []AchievementResponse `json:"achievements"`
	NewlyUnlocked []AchievementResponse `json:"newly_unlocked"`
}

// TelemetryResponse represents the response for a telemetry update.
type TelemetryResponse struct {
	Achievement   AchievementResponse `json:"achievement"`
	NewlyUnlocked bool                `json:"newly_unlocked"`
}

// ToAchievementResponse converts an Achievement to its DTO.
func ToAchievementResponse(a entity.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.Definition.ID,
		Title:       a.Definition.Title,
		Description: a.Definition.Description,
		Icon:        a.Definition.Icon,
		Category:    string(a.Definition.Category),
		Tier:        string(a.Definition.Tier),
		Requirement: a.Definition.Requirement,
		Reward:      a.Definition.Reward,
		Progress:    a.Progress,
		IsUnlocked:  a.IsUnlocked,
		UnlockedAt:  a.UnlockedAt,
	}
}

// ToAchievementListResponse converts an EvaluateAchievementsOutput to its DTO.
func ToAchievementListResponse(output *achievement.EvaluateAchievementsOutput) AchievementListResponse {
	achievements := make([]AchievementResponse, len(output.Achievements))
	for i, a := range output.Achievements {
		achievements[i] = ToAchievementResponse(a)
	}

	newlyUnlocked := make([]AchievementResponse, len(output.NewlyUnlocked))
	for i, a := range output.NewlyUnlocked {
		newlyUnlocked[i] = ToAchievementResponse(a)
	}

	return AchievementListResponse{
		Achievements:  achievements,
		NewlyUnlocked: newlyUnlocked,
	}
}

// ToTelemetryResponse converts an UpdateTelemetryOutput to its DTO.
func ToTelemetryResponse(output *achievement.UpdateTelemetryOutput) TelemetryResponse {
	return TelemetryResponse{
		Achievement:   ToAchievementResponse(output.Achievement),
		NewlyUnlocked: output.NewlyUnlocked,
	}
}
